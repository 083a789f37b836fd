package prompt

import (
	"errors"

	"github.com/barisgit/vitekit/config"
)

// QuestionType represents the kind of answer a question expects
type QuestionType int

const (
	// QuestionTypeInput is a free text question.
	QuestionTypeInput QuestionType = iota
	// QuestionTypeMultiSelect picks any number of options.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
	// QuestionTypeSelect picks exactly one option.
	QuestionTypeSelect
)

// Question defines a single questionnaire entry
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Options     []Option
	Default     string   // input and select questions
	DefaultBool bool     // confirm questions
	Defaults    []string // multi-select questions, option values
	Validate    func(string) error
	// Condition decides visibility from the answers collected so far.
	Condition func(*config.ProjectConfig) bool
}

// Option represents a selectable option
type Option struct {
	Label string // Display label
	Value string // Actual value stored
}

// Asker answers questions, interactively or from a script.
// Implementations return ErrAborted when the user cancels.
type Asker interface {
	Input(q *Question) (string, error)
	MultiSelect(q *Question) ([]string, error)
	Confirm(q *Question) (bool, error)
	Select(q *Question) (string, error)
}

// ErrAborted is returned when the questionnaire is cancelled
var ErrAborted = errors.New("questionnaire aborted by user")

// Question identifiers
const (
	IDProjectName     = "projectName"
	IDUIFrameworks    = "uiFrameworks"
	IDUseRouter       = "useRouter"
	IDUseTailwind     = "useTailwind"
	IDUsePinia        = "usePinia"
	IDUsePiniaPersist = "usePiniaPersist"
	IDPackageManager  = "packageManager"
)
