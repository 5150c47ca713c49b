// Package strength adapts an external password strength heuristic into the
// shape the rest of the service consumes.
package strength

import (
	"math"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/passforge/passforge-go/internal/model"
)

// Estimator scores a password. It is injected into the services so the
// underlying library can be swapped or stubbed in tests.
type Estimator func(password string) (model.Strength, error)

// Zxcvbn returns the default Estimator, backed by the zxcvbn heuristic
// port. The port reports entropy rather than a guess count, so guesses are
// derived as 2^(entropy-1); the feedback block is reshaped here since the
// port does not produce one.
func Zxcvbn() Estimator {
	return func(password string) (model.Strength, error) {
		result := zxcvbn.PasswordStrength(password, nil)

		warning, suggestions := feedback(result.Score, len(password))
		return model.Strength{
			Score: result.Score,
			Feedback: model.Feedback{
				Warning:     warning,
				Suggestions: suggestions,
			},
			CrackTime: result.CrackTimeDisplay,
			Guesses:   math.Round(math.Pow(2, result.Entropy-1)),
		}, nil
	}
}

// feedback maps a 0-4 score to a short warning and suggestion list.
func feedback(score, length int) (string, []string) {
	switch score {
	case 4:
		return "", []string{}
	case 3:
		return "", []string{"Consider using a 3-4 word passphrase for even stronger security."}
	case 2:
		return "Short or low variety.", []string{"Add more length and a mix of letters, numbers, symbols."}
	case 1:
		return "Too short or predictable.", []string{"Use at least 10-12 characters with mixed types."}
	default:
		suggestions := []string{"Use 12+ characters with upper/lower, numbers, symbols."}
		if length < 8 {
			suggestions = append(suggestions, "Avoid passwords shorter than 8 characters.")
		}
		return "Very weak password.", suggestions
	}
}
