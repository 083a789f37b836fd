// Package prompt collects the project configuration from the user.
package prompt

import (
	"fmt"

	"github.com/barisgit/vitekit/config"
	"github.com/barisgit/vitekit/internal/frontend"
)

// Questions returns the questionnaire in the order it is asked
func Questions(catalog *frontend.RegistryManager) []Question {
	frameworks := make([]Option, 0, len(catalog.GetFrameworks()))
	for _, fw := range catalog.GetFrameworks() {
		frameworks = append(frameworks, Option{Label: fw.DisplayName, Value: fw.ID})
	}

	managers := make([]Option, 0, len(config.PackageManagers))
	for _, pm := range config.PackageManagers {
		managers = append(managers, Option{Label: string(pm), Value: string(pm)})
	}

	return []Question{
		{
			ID:       IDProjectName,
			Type:     QuestionTypeInput,
			Title:    "Project name:",
			Default:  config.DefaultProjectName,
			Validate: config.ValidateProjectName,
		},
		{
			ID:      IDUIFrameworks,
			Type:    QuestionTypeMultiSelect,
			Title:   "Select UI frameworks (multiple allowed):",
			Options: frameworks,
		},
		{
			ID:          IDUseRouter,
			Type:        QuestionTypeConfirm,
			Title:       "Install Vue Router?",
			DefaultBool: true,
		},
		{
			ID:    IDUseTailwind,
			Type:  QuestionTypeConfirm,
			Title: "Use Tailwind CSS?",
		},
		{
			ID:          IDUsePinia,
			Type:        QuestionTypeConfirm,
			Title:       "Use Pinia for state management?",
			DefaultBool: true,
		},
		{
			ID:    IDUsePiniaPersist,
			Type:  QuestionTypeConfirm,
			Title: "Persist Pinia stores with pinia-plugin-persistedstate?",
			Condition: func(c *config.ProjectConfig) bool {
				return c.UsePinia
			},
		},
		{
			ID:      IDPackageManager,
			Type:    QuestionTypeSelect,
			Title:   "Choose a package manager:",
			Options: managers,
			Default: string(config.NPM),
		},
	}
}

// Run asks every visible question in order and returns the answers
func Run(questions []Question, asker Asker) (*config.ProjectConfig, error) {
	result := &config.ProjectConfig{}

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		if err := ask(q, asker, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Collect runs the questionnaire and validates the answers
func Collect(catalog *frontend.RegistryManager, asker Asker) (*config.ProjectConfig, error) {
	cfg, err := Run(Questions(catalog), asker)
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(cfg); errs.HasErrors() {
		return nil, errs
	}
	return cfg, nil
}

func ask(q *Question, asker Asker, result *config.ProjectConfig) error {
	switch q.Type {
	case QuestionTypeInput:
		answer, err := asker.Input(q)
		if err != nil {
			return err
		}
		return saveAnswer(q.ID, answer, result)
	case QuestionTypeSelect:
		answer, err := asker.Select(q)
		if err != nil {
			return err
		}
		return saveAnswer(q.ID, answer, result)
	case QuestionTypeConfirm:
		answer, err := asker.Confirm(q)
		if err != nil {
			return err
		}
		return saveAnswer(q.ID, answer, result)
	case QuestionTypeMultiSelect:
		answer, err := asker.MultiSelect(q)
		if err != nil {
			return err
		}
		return saveAnswer(q.ID, answer, result)
	default:
		return fmt.Errorf("question %s has unknown type %d", q.ID, q.Type)
	}
}

func saveAnswer(id string, value interface{}, result *config.ProjectConfig) error {
	switch v := value.(type) {
	case string:
		switch id {
		case IDProjectName:
			result.Name = v
			return nil
		case IDPackageManager:
			result.PackageManager = config.PackageManager(v)
			return nil
		}
	case bool:
		switch id {
		case IDUseRouter:
			result.UseRouter = v
			return nil
		case IDUseTailwind:
			result.UseTailwind = v
			return nil
		case IDUsePinia:
			result.UsePinia = v
			return nil
		case IDUsePiniaPersist:
			result.UsePiniaPersist = v
			return nil
		}
	case []string:
		if id == IDUIFrameworks {
			result.UIFrameworks = make([]config.UIFramework, len(v))
			for i, fw := range v {
				result.UIFrameworks[i] = config.UIFramework(fw)
			}
			return nil
		}
	}
	return fmt.Errorf("unexpected answer %v for question %s", value, id)
}
