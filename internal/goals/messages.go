package goals

import "math/rand/v2"

// Motivational messages shown with an achievement, as they appear in
// the app. Pt-BR only; the app has no other locale.
var motivationalMessages = []string{
	"Parabéns! Você bateu sua meta. Isso é prova que seu esforço diário está valendo a pena.",
	"Meta alcançada! Continue firme, você está construindo sua liberdade financeira.",
	"Você conseguiu! Muitos desistem, mas você está avançando.",
	"Mais um passo rumo aos seus 5 a 6 mil por mês.",
	"Disciplina vence talento. Continue.",
	"O sucesso é a soma de pequenos esforços repetidos dia após dia. Meta batida!",
	"Isso aí! Cada meta alcançada é um degrau a mais na escada do seu sucesso.",
	"Que orgulho! Continue com essa garra e você vai longe.",
}

func pickMessage() string {
	return motivationalMessages[rand.IntN(len(motivationalMessages))]
}
