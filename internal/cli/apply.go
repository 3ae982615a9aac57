package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/adminboard/internal/config"
	"github.com/rshade/adminboard/internal/listctl"
	"github.com/rshade/adminboard/internal/notify"
	"github.com/rshade/adminboard/internal/tui"
)

// Step operation names.
const (
	opQuery  = "query"
	opPage   = "page"
	opSort   = "sort"
	opAdd    = "add"
	opDelete = "delete"
	opUpdate = "update"
	opEdit   = "edit"
)

// errStepShape reports a step that names zero or several operations.
var errStepShape = errors.New("step must name exactly one operation")

// Script is a list of operations replayed against one controller.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one operation.
type Step struct {
	Query  *string           `yaml:"query,omitempty"`
	Page   *int              `yaml:"page,omitempty"`
	Sort   *string           `yaml:"sort,omitempty"`
	Add    map[string]string `yaml:"add,omitempty"`
	Delete *string           `yaml:"delete,omitempty"`
	Update *FieldChange      `yaml:"update,omitempty"`
	Edit   *EditStep         `yaml:"edit,omitempty"`
}

// FieldChange sets one field of one record.
type FieldChange struct {
	ID    string `yaml:"id"`
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// EditStep drives the inline edit buffer: begin, change, then commit or
// cancel.
type EditStep struct {
	FieldChange `yaml:",inline"`

	Cancel bool `yaml:"cancel,omitempty"`
}

// Op returns the name of the step's operation.
func (s Step) Op() (string, error) {
	var ops []string
	if s.Query != nil {
		ops = append(ops, opQuery)
	}
	if s.Page != nil {
		ops = append(ops, opPage)
	}
	if s.Sort != nil {
		ops = append(ops, opSort)
	}
	if s.Add != nil {
		ops = append(ops, opAdd)
	}
	if s.Delete != nil {
		ops = append(ops, opDelete)
	}
	if s.Update != nil {
		ops = append(ops, opUpdate)
	}
	if s.Edit != nil {
		ops = append(ops, opEdit)
	}
	if len(ops) != 1 {
		return "", fmt.Errorf("%w, got %v", errStepShape, ops)
	}
	return ops[0], nil
}

// ParseScript decodes a script, rejecting unknown keys and malformed steps.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var script Script
	if err := dec.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return &script, nil
		}
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	for i, step := range script.Steps {
		if _, err := step.Op(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &script, nil
}

// StepResult is the outcome of one step.
type StepResult struct {
	Step          int                   `json:"step"                    yaml:"step"`
	Op            string                `json:"op"                      yaml:"op"`
	OK            bool                  `json:"ok"                      yaml:"ok"`
	Error         string                `json:"error,omitempty"         yaml:"error,omitempty"`
	Notifications []notify.Notification `json:"notifications,omitempty" yaml:"notifications,omitempty"`
}

// ApplyResult is the outcome of a whole script.
type ApplyResult struct {
	Steps  []StepResult `json:"steps"  yaml:"steps"`
	Failed int          `json:"failed" yaml:"failed"`
	Page   listctl.Page `json:"page"   yaml:"page"`
}

// RunScript replays script against ctrl. A failing step is recorded and the
// script continues. toasts must be the recorder ctrl notifies.
func RunScript(ctrl *listctl.Controller, toasts *notify.Recorder, script *Script) ApplyResult {
	var result ApplyResult
	for i, step := range script.Steps {
		seen := len(toasts.All())
		op, err := step.Op()
		if err == nil {
			err = runStep(ctrl, op, step)
		}

		sr := StepResult{Step: i + 1, Op: op, OK: err == nil}
		if err != nil {
			sr.Error = err.Error()
			result.Failed++
		}
		if all := toasts.All(); len(all) > seen {
			sr.Notifications = all[seen:]
		}
		result.Steps = append(result.Steps, sr)
	}
	result.Page = ctrl.Paged()
	return result
}

func runStep(ctrl *listctl.Controller, op string, step Step) error {
	var err error
	switch op {
	case opQuery:
		ctrl.SetQuery(*step.Query)
	case opPage:
		ctrl.GoToPage(*step.Page)
	case opSort:
		err = applySort(ctrl, *step.Sort)
	case opAdd:
		_, err = ctrl.Add(step.Add)
	case opDelete:
		_, err = ctrl.Delete(*step.Delete)
	case opUpdate:
		u := step.Update
		_, err = ctrl.UpdateField(u.ID, u.Field, u.Value)
	case opEdit:
		err = runEdit(ctrl, step.Edit)
	}
	return err
}

// runEdit begins an edit with the record's current text, replaces it with
// the step value, then commits or cancels.
func runEdit(ctrl *listctl.Controller, e *EditStep) error {
	current := ""
	if r, err := ctrl.Get(e.ID); err == nil {
		current = r.Text(e.Field)
	}
	ctrl.BeginEdit(e.ID, e.Field, current)
	ctrl.ChangeEditValue(e.Value)
	if e.Cancel {
		ctrl.CancelEdit()
		return nil
	}
	_, err := ctrl.CommitEdit()
	return err
}

func newApplyCmd(name string) *cobra.Command {
	var (
		file   string
		output string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "apply",
		Short: fmt.Sprintf("Replay a script of operations against the sample %s", name),
		Long: `Replays a YAML script against the sample collection and prints each step's
outcome followed by the resulting page. A failing step is reported and the
script continues. Nothing is written back.

Each step names exactly one operation:

  steps:
    - query: manager
    - page: 2
    - sort: name:desc
    - add: {name: Ann Lee, email: ann@example.com, role: Editor}
    - delete: "3"
    - update: {id: "1", field: role, value: Admin}
    - edit: {id: "1", field: role, value: Viewer, cancel: true}`,
		Example: fmt.Sprintf(`  adminboard %[1]s apply --file ops.yaml
  adminboard %[1]s apply --file - --output json < ops.yaml`, name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, name, file, output, strict)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "script file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, yaml (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with code 2 when any step fails")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runApply(cmd *cobra.Command, name, file, output string, strict bool) error {
	data, err := readScript(cmd, file)
	if err != nil {
		return err
	}
	script, err := ParseScript(data)
	if err != nil {
		return err
	}

	s, err := newSession(cmd, name)
	if err != nil {
		return err
	}
	result := RunScript(s.ctrl, s.toasts, script)
	logger.Debug().Ctx(cmd.Context()).
		Str("entity", name).
		Int("steps", len(result.Steps)).
		Int("failed", result.Failed).
		Msg("script applied")

	if output == "" {
		output = config.GetDefaultOutputFormat()
	}
	switch output {
	case config.FormatJSON:
		err = renderJSON(cmd.OutOrStdout(), result)
	case config.FormatYAML:
		err = renderYAML(cmd.OutOrStdout(), result)
	case config.FormatTable:
		err = renderApplyPlain(cmd.OutOrStdout(), s.ctrl.Schema(), result)
	default:
		return fmt.Errorf("%w: %q (valid: table, json, yaml)", config.ErrInvalidFormat, output)
	}
	if err != nil {
		return err
	}

	if strict && result.Failed > 0 {
		return &ExitError{
			ExitCode: ExitCodeStepFailed,
			Reason:   fmt.Sprintf("%d of %d steps failed", result.Failed, len(result.Steps)),
		}
	}
	return nil
}

func readScript(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading script from stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return data, nil
}

func renderApplyPlain(w io.Writer, schema *listctl.Schema, result ApplyResult) error {
	for _, sr := range result.Steps {
		status := "ok"
		if !sr.OK {
			status = "failed: " + sr.Error
		}
		fmt.Fprintf(w, "%d. %s: %s\n", sr.Step, sr.Op, status)
		for _, n := range sr.Notifications {
			fmt.Fprintf(w, "   [%s] %s: %s\n", n.Severity, n.Title, n.Description)
		}
	}
	fmt.Fprintln(w)
	return renderPlain(w, schema, result.Page, tui.NewFormatter(config.GetGlobalConfig().Output.Currency))
}
