package store

import (
	"fmt"

	"github.com/guiferreira3296-lab/Empreendedor-de-Rua-1.0/internal/core"
)

// Key builders for the stored schema. The layout is fixed: it must stay
// readable alongside data persisted by earlier versions of the app.
//
//	expenses_{userID}        -> []Transaction
//	income_{userID}          -> []Transaction
//	financialGoals_{userID}  -> GoalSet
//	businessType_{userID}    -> free-text string
//	videoContent_{userID}    -> []VideoContent
//	scriptsContent_{userID}  -> []ScriptContent
//	dailyGoalMet_{userID}_{YYYY-MM-DD}   \
//	weeklyGoalMet_{userID}_{YYYY-Www}     } presence-as-boolean marks
//	monthlyGoalMet_{userID}_{Y-M}        /

func LedgerKey(userID int64, kind core.Kind) string {
	if kind == core.KindIncome {
		return fmt.Sprintf("income_%d", userID)
	}
	return fmt.Sprintf("expenses_%d", userID)
}

func GoalsKey(userID int64) string {
	return fmt.Sprintf("financialGoals_%d", userID)
}

func BusinessTypeKey(userID int64) string {
	return fmt.Sprintf("businessType_%d", userID)
}

func VideoContentKey(userID int64) string {
	return fmt.Sprintf("videoContent_%d", userID)
}

func ScriptsContentKey(userID int64) string {
	return fmt.Sprintf("scriptsContent_%d", userID)
}

// GoalMetKey keys the achievement mark for one period instance.
func GoalMetKey(period core.Period, userID int64, instanceID string) string {
	return GoalMetPrefix(period, userID) + instanceID
}

// GoalMetPrefix is the common prefix of all marks for one user and
// period kind; used to enumerate marks for pruning.
func GoalMetPrefix(period core.Period, userID int64) string {
	return fmt.Sprintf("%sGoalMet_%d_", period, userID)
}
