package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/useleadnest/leadnest-cli/internal/api"
	"github.com/useleadnest/leadnest-cli/internal/leads"
	"github.com/useleadnest/leadnest-cli/internal/tui"
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Work with your leads table",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads",
	Long: `List your leads, filtered and sorted locally.

Examples:
  leadnest leads list
  leadnest leads list --status contacted --sort name
  leadnest leads list --search "ada" --json`,
	RunE: runLeadsList,
}

var leadsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a single lead",
	Long: `Add a lead. With no flags, an interactive form collects the fields.

Examples:
  leadnest leads add
  leadnest leads add --first-name Ada --last-name Lovelace --email ada@example.com`,
	RunE: runLeadsAdd,
}

var leadsBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse leads in an interactive table",
	RunE:  runLeadsBrowse,
}

var leadsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a lead's status or notes",
	Long: `Update a lead.

Examples:
  leadnest leads update 42 --status contacted
  leadnest leads update 42 --status booked --notes "Demo on Friday"`,
	Args: cobra.ExactArgs(1),
	RunE: runLeadsUpdate,
}

var leadsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk import leads from a CSV file",
	Long: `Bulk import leads from a CSV file.

The file is parsed locally first: the header must contain a name
column (full_name, or first_name/last_name) and obvious format errors
are reported before anything is uploaded. A content hash of every
imported file is remembered, so importing the same file twice warns
even if it was renamed.

Examples:
  leadnest leads import leads.csv
  leadnest leads import leads.csv --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runLeadsImport,
}

func init() {
	leadsListCmd.Flags().String("search", "", "substring match on name, email, or phone")
	leadsListCmd.Flags().String("status", leads.StatusAll, "filter by status (new, contacted, booked, all)")
	leadsListCmd.Flags().String("sort", leads.SortByCreated, "sort field (name, email, status, created)")
	leadsListCmd.Flags().Bool("desc", false, "sort descending")

	leadsAddCmd.Flags().String("first-name", "", "lead first name")
	leadsAddCmd.Flags().String("last-name", "", "lead last name")
	leadsAddCmd.Flags().String("email", "", "lead email")
	leadsAddCmd.Flags().String("phone", "", "lead phone")
	leadsAddCmd.Flags().String("notes", "", "free-form notes")

	leadsBrowseCmd.Flags().String("search", "", "substring match on name, email, or phone")
	leadsBrowseCmd.Flags().String("status", leads.StatusAll, "filter by status")

	leadsUpdateCmd.Flags().String("status", "", "new status (new, contacted, booked)")
	leadsUpdateCmd.Flags().String("notes", "", "replacement notes")

	leadsImportCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompts")

	leadsCmd.AddCommand(leadsListCmd, leadsAddCmd, leadsUpdateCmd, leadsBrowseCmd, leadsImportCmd)
	rootCmd.AddCommand(leadsCmd)
}

func runLeadsList(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	filtered, err := fetchFiltered(cmd, a)
	if err != nil {
		return err
	}

	sortField, _ := cmd.Flags().GetString("sort")
	descending, _ := cmd.Flags().GetBool("desc")
	if err := leads.Sort(filtered, sortField, descending); err != nil {
		return err
	}

	if flagJSON {
		return printJSON(filtered)
	}

	if len(filtered) == 0 {
		fmt.Println("No leads match.")
		return nil
	}

	fmt.Printf("%-26s %-30s %-16s %-10s %s\n",
		a.Styles.Key.Render("NAME"), a.Styles.Key.Render("EMAIL"),
		a.Styles.Key.Render("PHONE"), a.Styles.Key.Render("STATUS"),
		a.Styles.Key.Render("SCORE"))
	for _, lead := range filtered {
		score := ""
		if lead.QualityScore > 0 {
			score = fmt.Sprintf("%.2f", lead.QualityScore)
		}
		fmt.Printf("%-26s %-30s %-16s %-10s %s\n",
			truncate(lead.FullName, 24), truncate(lead.Email, 28),
			lead.Phone, lead.Status, score)
	}
	fmt.Println(a.Styles.Muted.Render(fmt.Sprintf("%d leads", len(filtered))))
	return nil
}

func runLeadsAdd(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	var lead *api.NewLead
	if firstName == "" && lastName == "" {
		if !tui.IsInteractive() {
			return fmt.Errorf("--first-name and --last-name are required when stdin is not a terminal")
		}
		lead, err = tui.LeadForm()
		if err != nil {
			return err
		}
	} else {
		if firstName == "" || lastName == "" {
			return fmt.Errorf("both --first-name and --last-name are required")
		}
		email, _ := cmd.Flags().GetString("email")
		if email != "" {
			if err := tui.ValidateEmail(email); err != nil {
				return err
			}
		}
		phone, _ := cmd.Flags().GetString("phone")
		notes, _ := cmd.Flags().GetString("notes")
		lead = &api.NewLead{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Phone:     phone,
			Notes:     notes,
			Status:    leads.StatusNew,
		}
	}

	created, err := a.Client.CreateLead(cmd.Context(), *lead)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("%s Added lead %s (#%d)\n", a.Styles.Success.Render("✓"), created.FullName, created.ID)
	return nil
}

func runLeadsUpdate(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid lead id %q", args[0])
	}

	status, _ := cmd.Flags().GetString("status")
	notes, _ := cmd.Flags().GetString("notes")
	if status == "" && notes == "" {
		return fmt.Errorf("nothing to update: pass --status or --notes")
	}
	if status != "" && (status == leads.StatusAll || !leads.ValidStatus(status)) {
		return fmt.Errorf("unknown status %q: expected new, contacted, or booked", status)
	}

	updated, err := a.Client.UpdateLead(cmd.Context(), id, api.NewLead{Status: status, Notes: notes})
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	if flagJSON {
		return printJSON(updated)
	}
	fmt.Printf("%s Updated lead %s (#%d)\n", a.Styles.Success.Render("✓"), updated.FullName, updated.ID)
	return nil
}

func runLeadsBrowse(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}
	if !tui.IsInteractive() {
		return fmt.Errorf("browse needs a terminal; use 'leadnest leads list' instead")
	}

	filtered, err := fetchFiltered(cmd, a)
	if err != nil {
		return err
	}
	return tui.Browse(filtered)
}

func runLeadsImport(cmd *cobra.Command, args []string) error {
	a, err := requireAuth(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	digest, err := leads.DigestFile(path)
	if err != nil {
		return err
	}
	ledger, err := leads.LoadLedger(a.Config.ImportLedgerPath())
	if err != nil {
		return err
	}

	if previous, found := ledger.Lookup(digest); found {
		fmt.Println(a.Styles.Warning.Render("⚠") + fmt.Sprintf(
			" This file was already imported as %q on %s (%d created).",
			previous.Filename, previous.ImportedAt.Local().Format("2006-01-02"), previous.Created))
		if !skipConfirm {
			ok, err := tui.PromptForConfirmation("Import it again anyway?", false)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Import cancelled.")
				return nil
			}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	preview, err := leads.PreviewCSV(f)
	f.Close()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s — %d rows, columns: %v\n",
		a.Styles.Key.Render("File:"), filepath.Base(path), preview.RowCount, preview.Headers)
	for _, row := range preview.Sample {
		fmt.Println(a.Styles.Muted.Render("  " + fmt.Sprintf("%v", row)))
	}

	if !skipConfirm && tui.IsInteractive() {
		ok, err := tui.PromptForConfirmation(
			fmt.Sprintf("Upload %d leads?", preview.RowCount), true)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	f, err = os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	result, err := a.Client.BulkUploadLeads(cmd.Context(), filepath.Base(path), f)
	if err != nil {
		return fmt.Errorf("bulk upload failed: %w", err)
	}

	if err := ledger.Record(leads.ImportRecord{
		Digest:     digest,
		Filename:   filepath.Base(path),
		ImportedAt: time.Now(),
		Created:    result.Created,
		Duplicates: result.Duplicates,
	}); err != nil {
		a.Logger.WithError(err).Warn("failed to record import")
	}

	if flagJSON {
		return printJSON(result)
	}
	fmt.Printf("%s Imported: %d created, %d duplicates skipped\n",
		a.Styles.Success.Render("✓"), result.Created, result.Duplicates)
	return nil
}

// fetchFiltered loads the leads and applies the search/status flags.
func fetchFiltered(cmd *cobra.Command, a *App) ([]api.Lead, error) {
	status, _ := cmd.Flags().GetString("status")
	if !leads.ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q: expected new, contacted, booked, or all", status)
	}
	search, _ := cmd.Flags().GetString("search")

	all, err := a.Client.ListLeads(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}
	return leads.Filter{Search: search, Status: status}.Apply(all), nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
