package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyAsker asks questions on the terminal
type SurveyAsker struct {
	opts []survey.AskOpt
}

// NewSurveyAsker creates an asker on the process's standard streams
func NewSurveyAsker(opts ...survey.AskOpt) *SurveyAsker {
	return &SurveyAsker{opts: opts}
}

// Input implements Asker
func (a *SurveyAsker) Input(q *Question) (string, error) {
	var answer string
	opts := a.opts
	if q.Validate != nil {
		opts = append(append([]survey.AskOpt{}, a.opts...), survey.WithValidator(func(ans interface{}) error {
			s, _ := ans.(string)
			return q.Validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: q.Title, Default: q.Default}, &answer, opts...)
	return answer, translate(err)
}

// MultiSelect implements Asker; answers are option values
func (a *SurveyAsker) MultiSelect(q *Question) ([]string, error) {
	var labels []string
	p := &survey.MultiSelect{Message: q.Title, Options: optionLabels(q.Options)}
	if len(q.Defaults) > 0 {
		p.Default = labelsFor(q.Options, q.Defaults)
	}
	if err := survey.AskOne(p, &labels, a.opts...); err != nil {
		return nil, translate(err)
	}
	return valuesFor(q.Options, labels)
}

// Confirm implements Asker
func (a *SurveyAsker) Confirm(q *Question) (bool, error) {
	answer := q.DefaultBool
	err := survey.AskOne(&survey.Confirm{Message: q.Title, Default: q.DefaultBool}, &answer, a.opts...)
	return answer, translate(err)
}

// Select implements Asker; the answer is the option value
func (a *SurveyAsker) Select(q *Question) (string, error) {
	var label string
	p := &survey.Select{Message: q.Title, Options: optionLabels(q.Options)}
	if q.Default != "" {
		p.Default = labelsFor(q.Options, []string{q.Default})[0]
	}
	if err := survey.AskOne(p, &label, a.opts...); err != nil {
		return "", translate(err)
	}
	values, err := valuesFor(q.Options, []string{label})
	if err != nil {
		return "", err
	}
	return values[0], nil
}

// translate maps Ctrl-C and closed input to ErrAborted
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrAborted
	}
	return err
}

func optionLabels(options []Option) []string {
	labels := make([]string, len(options))
	for i, o := range options {
		labels[i] = o.Label
	}
	return labels
}

func labelsFor(options []Option, values []string) []string {
	labels := make([]string, 0, len(values))
	for _, v := range values {
		for _, o := range options {
			if o.Value == v {
				labels = append(labels, o.Label)
			}
		}
	}
	if len(labels) == 0 {
		return values
	}
	return labels
}

func valuesFor(options []Option, labels []string) ([]string, error) {
	values := make([]string, 0, len(labels))
	for _, l := range labels {
		found := false
		for _, o := range options {
			if o.Label == l {
				values = append(values, o.Value)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown option %q", l)
		}
	}
	return values, nil
}
