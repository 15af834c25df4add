package llm

import (
	"fmt"
	"strings"

	"github.com/lexjuris/ruling-analyzer/internal/domain"
)

// SystemInstruction is the fixed persona sent with every completion: a
// constrained legal analyst that extracts only what each task asks for and
// declares when information is absent from the text.
const SystemInstruction = "You are a legal assistant specialized in the analysis of Spanish judicial rulings. " +
	"Your role is to extract relevant legal information in an objective and technical manner. " +
	"You do not issue legal opinions or personal assessments. " +
	"You do not make inferences that are not grounded in the text. " +
	"If a piece of information is not expressly stated in the ruling, you must clearly say so. " +
	"You must limit your answer strictly to the task requested in each query."

// noQuestionPrompt is produced for the free-form category when no question was
// supplied. It deliberately carries no ruling text.
const noQuestionPrompt = `The free-form question category was selected, but no question was provided.
Reply: "No question was provided."
`

// BuildPrompt renders a category's instruction around the ruling text. Each
// category restricts the answer to its own target and names what must be left
// out, so the model does not return everything at once. The ruling text is
// appended verbatim at the end of every prompt; the one exception is the
// fixed prompt for a blank free-form question, which stands alone.
func BuildPrompt(category domain.Category, text string, question string) string {
	switch category {
	case domain.CategorySubjects:
		return fmt.Sprintf(`Identify exclusively the parties involved in the judicial ruling
and their procedural position (claimant, defendant, accused, public
prosecutor, administration, etc.).

Do not include facts, legal grounds, ratio decidendi or holding.

RULING:
%s`, text)

	case domain.CategoryRatio:
		return fmt.Sprintf(`Identify exclusively the ratio decidendi of the ruling.

Limit your answer solely to the fundamental legal reasoning
that justifies the decision.

Do not include information about the parties, the facts or the holding.

RULING:
%s`, text)

	case domain.CategoryLaw:
		return fmt.Sprintf(`Identify exclusively the legal provisions applied in the judicial ruling.

Include statutes, regulations and precepts expressly cited.
Do not include facts, case analysis, ratio decidendi or holding.

RULING:
%s`, text)

	case domain.CategoryHolding:
		return fmt.Sprintf(`Summarize exclusively the holding of the ruling in one single clear and precise sentence.

Do not include legal grounds, facts or ratio decidendi.

RULING:
%s`, text)

	case domain.CategoryConsequence:
		return fmt.Sprintf(`Identify exclusively the legal consequence imposed by the ruling
(penalty, sanction, conviction or obligation).

Do not include any other aspect of the ruling.

RULING:
%s`, text)

	case domain.CategoryQuestion:
		if strings.TrimSpace(question) == "" {
			return noQuestionPrompt
		}
		return fmt.Sprintf(`Answer exclusively the following legal or factual question,
relying solely on the text of the ruling provided.

If the information is not expressly stated, say so clearly.

QUESTION:
%s

RULING:
%s`, question, text)
	}

	// Safety fallback, also used for CategoryGeneral.
	return fmt.Sprintf(`Analyze the following judicial ruling objectively from a legal standpoint.

RULING:
%s`, text)
}
