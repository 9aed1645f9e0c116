package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/svcprofile/internal/client"
	"github.com/ppiankov/svcprofile/internal/identity"
	"github.com/ppiankov/svcprofile/internal/model"
)

var (
	formFile   string
	formUser   string
	formFormat string
	formServer string
	formValues = model.DefaultForm()
)

func init() {
	rootCmd.AddCommand(formCmd)
	f := formCmd.Flags()
	f.StringVar(&formFile, "file", "", "YAML file with the form values (flags override it)")
	f.StringVarP(&formUser, "user", "u", "", "Employee ID (prompted if empty)")
	f.StringVarP(&formFormat, "format", "f", "text", "Result format (text|json)")
	f.StringVar(&formServer, "server", "", "Submit to a profiler server at this address instead of scoring locally")

	f.StringVar(&formValues.ServiceName, "name", "", "Service name")
	f.StringVar(&formValues.Description, "description", "", "Service description")
	f.StringVar(&formValues.BusinessCriticality, "criticality", formValues.BusinessCriticality,
		"Business criticality, \"N - label\" or N (1 Mission Critical .. 5 Non Critical)")
	f.StringVar(&formValues.DataClassification, "classification", formValues.DataClassification,
		"Data classification, \"N - label\" or N (1 Highly Restricted .. 5 Public)")
	f.Float64Var(&formValues.Reachability, "reachability", formValues.Reachability, "Reachability (0-2)")
	f.Float64Var(&formValues.OperationalAvailability, "availability", formValues.OperationalAvailability, "Operational availability (0-1)")
	f.Float64Var(&formValues.PrivilegeThreshold, "privilege", formValues.PrivilegeThreshold, "Privilege threshold (0-1)")
	f.Float64Var(&formValues.InteractionDependency, "interaction", formValues.InteractionDependency, "Interaction dependency (0-1)")
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Profile a service from flags or a YAML file in one pass",
	Long: "Logs in, reads every input at once and prints the exposure, the three\n" +
		"aggregate scores with their P1-P5 profiles, and both charts.\n\n" +
		"Values outside their ranges are reported, not clamped.",
	Example: `  svcprofile form -u emp001 --name billing --criticality "2 - Highly Critical" --classification 3
  svcprofile form -u emp001 --file billing.yaml --format json`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	if err := validFormat(formFormat); err != nil {
		return err
	}
	f, err := collectForm(cmd)
	if err != nil {
		return err
	}

	var d dialogue
	if formServer != "" {
		c, err := client.New(formServer)
		if err != nil {
			return err
		}
		defer c.Close()
		d = &remoteDialogue{c: c}
	} else {
		registry, err := identity.Load(cfg.CredentialsPath)
		if err != nil {
			return err
		}
		d = newLocalDialogue(registry)
	}

	return submitForm(cmd.Context(), newConsole(cmd), d, formUser, formFormat, f)
}

// collectForm starts from the file, if any, and applies explicitly set flags.
func collectForm(cmd *cobra.Command) (model.Form, error) {
	if formFile == "" {
		return formValues, nil
	}

	data, err := os.ReadFile(formFile)
	if err != nil {
		return model.Form{}, fmt.Errorf("failed to read form: %w", err)
	}
	f := model.DefaultForm()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.Form{}, fmt.Errorf("failed to parse form: %w", err)
	}

	flags := cmd.Flags()
	override := map[string]func(){
		"name":           func() { f.ServiceName = formValues.ServiceName },
		"description":    func() { f.Description = formValues.Description },
		"criticality":    func() { f.BusinessCriticality = formValues.BusinessCriticality },
		"classification": func() { f.DataClassification = formValues.DataClassification },
		"reachability":   func() { f.Reachability = formValues.Reachability },
		"availability":   func() { f.OperationalAvailability = formValues.OperationalAvailability },
		"privilege":      func() { f.PrivilegeThreshold = formValues.PrivilegeThreshold },
		"interaction":    func() { f.InteractionDependency = formValues.InteractionDependency },
	}
	for name, apply := range override {
		if flags.Changed(name) {
			apply()
		}
	}
	return f, nil
}

func submitForm(ctx context.Context, con *console, d dialogue, user, format string, f model.Form) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := login(ctx, con, d, user); err != nil {
		return err
	}
	out, err := d.SubmitForm(ctx, f)
	if err != nil {
		return err
	}
	return writeComputed(con.out, format, out)
}
