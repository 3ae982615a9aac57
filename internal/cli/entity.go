package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/adminboard/internal/config"
	"github.com/rshade/adminboard/internal/dataset"
	"github.com/rshade/adminboard/internal/listctl"
	"github.com/rshade/adminboard/internal/logging"
	"github.com/rshade/adminboard/internal/notify"
	"github.com/rshade/adminboard/internal/pagination"
	"github.com/rshade/adminboard/internal/tui"
)

// tabPadding is the minimum column padding for tabwriter output.
const tabPadding = 2

// newEntityCmd creates the command group for one dataset entity.
func newEntityCmd(name string) *cobra.Command {
	title := tui.Title(name)
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("List, search and edit %s", name),
	}
	cmd.AddCommand(
		newListCmd(name),
		newTUICmd(name),
		newApplyCmd(name),
	)
	cmd.Long = fmt.Sprintf("%s commands operate on the built-in sample %s. Changes live for one process only.", title, name)
	return cmd
}

// session is one controller plus the recorder capturing its notifications.
type session struct {
	ctrl   *listctl.Controller
	toasts *notify.Recorder
}

// newSession builds a controller over the named entity's sample data, using
// the configured page size, window and id strategy unless overridden by flags.
func newSession(cmd *cobra.Command, name string) (*session, error) {
	entity, err := dataset.Lookup(name)
	if err != nil {
		return nil, err
	}

	pageSize := config.GetPageSize()
	if n, _ := cmd.Flags().GetInt("page-size"); n != 0 {
		pageSize = n
	}
	params := pagination.Params{Page: pagination.DefaultPage, PageSize: pageSize}
	if err = params.Validate(); err != nil {
		return nil, fmt.Errorf("--page-size: %w", err)
	}

	strategy := config.GetIDStrategy()
	if s, _ := cmd.Flags().GetString("id-strategy"); s != "" {
		strategy = s
	}
	ids, err := listctl.NewIDGenerator(strategy)
	if err != nil {
		return nil, fmt.Errorf("--id-strategy: %w", err)
	}

	log := logging.ComponentLogger(*logging.FromContext(cmd.Context()), name)
	toasts := &notify.Recorder{}

	ctrl, err := listctl.New(entity.Schema(), entity.Seed(),
		listctl.WithPageSize(pageSize),
		listctl.WithWindowSize(config.GetWindowSize()),
		listctl.WithIDGenerator(ids),
		listctl.WithNotifier(notify.Multi(toasts, notify.NewLogSink(log))),
		listctl.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s controller: %w", name, err)
	}
	return &session{ctrl: ctrl, toasts: toasts}, nil
}

// applySort parses a field[:order] flag value onto the controller.
func applySort(ctrl *listctl.Controller, sortStr string) error {
	if sortStr == "" {
		return nil
	}
	field, order, err := pagination.ParseSort(sortStr)
	if err != nil {
		return fmt.Errorf("--sort: %w", err)
	}
	if err = ctrl.SetSort(field, order); err != nil {
		return fmt.Errorf("--sort: %w", err)
	}
	return nil
}

type listOptions struct {
	query  string
	page   int
	sort   string
	output string
	plain  bool
}

func newListCmd(name string) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("Show one page of %s", name),
		Long: fmt.Sprintf(`Shows one page of %s with its caption and page bar.

Table output opens the interactive page when stdin and stdout are terminals,
prints a styled table on a non-interactive terminal, and plain text otherwise.`, name),
		Example: fmt.Sprintf(`  adminboard %[1]s list
  adminboard %[1]s list --query ann --page 2
  adminboard %[1]s list --sort name:desc --output json`, name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, name, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "case-insensitive search over the searchable fields")
	cmd.Flags().IntVarP(&opts.page, "page", "p", pagination.DefaultPage, "page number (clamped to the valid range)")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "sort as field[:asc|desc]")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table, json, yaml (default from config)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "force plain table output")
	return cmd
}

func runList(cmd *cobra.Command, name string, opts listOptions) error {
	s, err := newSession(cmd, name)
	if err != nil {
		return err
	}
	s.ctrl.SetQuery(opts.query)
	if err = applySort(s.ctrl, opts.sort); err != nil {
		return err
	}
	s.ctrl.GoToPage(opts.page)

	format := opts.output
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}

	currency := config.GetGlobalConfig().Output.Currency
	switch format {
	case config.FormatJSON:
		return renderJSON(cmd.OutOrStdout(), s.ctrl.Paged())
	case config.FormatYAML:
		return renderYAML(cmd.OutOrStdout(), s.ctrl.Paged())
	case config.FormatTable:
	default:
		return fmt.Errorf("%w: %q (valid: table, json, yaml)", config.ErrInvalidFormat, format)
	}

	switch tui.DetectOutputMode(opts.plain, false, false) {
	case tui.OutputModeInteractive:
		return runInteractive(s, currency)
	case tui.OutputModeStyled:
		_, err = fmt.Fprint(cmd.OutOrStdout(),
			tui.RenderPage(s.ctrl.Schema(), s.ctrl.Paged(), tui.NewFormatter(currency)))
		return err
	case tui.OutputModePlain:
		fallthrough
	default:
		return renderPlain(cmd.OutOrStdout(), s.ctrl.Schema(), s.ctrl.Paged(), tui.NewFormatter(currency))
	}
}

func newTUICmd(name string) *cobra.Command {
	var query, sortStr string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: fmt.Sprintf("Browse and edit %s interactively", name),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("tui needs an interactive terminal; use list instead")
			}
			s, err := newSession(cmd, name)
			if err != nil {
				return err
			}
			s.ctrl.SetQuery(query)
			if err = applySort(s.ctrl, sortStr); err != nil {
				return err
			}
			return runInteractive(s, config.GetGlobalConfig().Output.Currency)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "initial search text")
	cmd.Flags().StringVar(&sortStr, "sort", "", "initial sort as field[:asc|desc]")
	return cmd
}

// runInteractive runs the Bubble Tea page until the user quits.
func runInteractive(s *session, currency string) error {
	model := tui.NewPageModel(s.ctrl, s.toasts, currency)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive page: %w", err)
	}
	return nil
}

// renderPlain writes the page as an aligned text table followed by the
// caption and the page bar.
func renderPlain(w io.Writer, schema *listctl.Schema, page listctl.Page, f *tui.Formatter) error {
	if page.Query != "" {
		fmt.Fprintf(w, "%s matching %q\n\n", tui.Title(schema.Name), page.Query)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	header := []string{"ID"}
	for _, field := range schema.Fields {
		header = append(header, strings.ToUpper(field.Label))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, r := range page.Rows {
		cells := []string{r.ID()}
		for _, field := range schema.Fields {
			cells = append(cells, f.Cell(field, r))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	if len(page.Rows) == 0 {
		fmt.Fprintf(w, "No %s found.\n", schema.Name)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, page.Caption())
	fmt.Fprintln(w, tui.PageBar(page))
	return nil
}
