package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/jstruct/internal/domain"
	m "github.com/mouse-blink/jstruct/internal/model"
)

var addNameFlag string
var addTypeFlag string
var addModifierFlags []string
var addInitFlag string
var addParamFlags []string
var addBodyFileFlag string

// addCmd represents the add command.
var addCmd = newAddCmd()

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <variable|method|enum|class> <file.java>",
		Short: "Add a member to a class",
		Long: `Add a member at the end of its area. The new member follows the
indentation of the class and the configured indent width.

Examples:
  jstruct add variable Counter.java --modifier private --type int --name total --init 0
  jstruct add method Counter.java --type int --name sum --param "int a" --param "int b" --body-file sum.txt
  jstruct add enum Counter.java --name Mode`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			spec, err := addSpec(cmd, kind)
			if err != nil {
				return err
			}

			result, err := workflow.Add(cmd.Context(), m.Path(args[1]), spec)
			if err != nil {
				return err
			}

			return report(cmd, result)
		},
	}
	cmd.Flags().StringVar(&addNameFlag, "name", "", "name of the new member")
	cmd.Flags().StringVarP(&addTypeFlag, "type", "t", "", "variable type or method return type; empty for constructors")
	cmd.Flags().StringArrayVarP(&addModifierFlags, "modifier", "m", nil, "modifier keyword (can be repeated)")
	cmd.Flags().StringVar(&addInitFlag, "init", "", "initializer expression of a variable")
	cmd.Flags().StringArrayVarP(&addParamFlags, "param", "p", nil, `method parameter as "<type> <name>" (can be repeated)`)
	cmd.Flags().StringVar(&addBodyFileFlag, "body-file", "", `file holding the method body, or "-" for stdin`)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func addSpec(cmd *cobra.Command, kind m.MemberKind) (domain.MemberSpec, error) {
	spec := domain.MemberSpec{
		Kind:      kind,
		Modifiers: addModifierFlags,
		Name:      addNameFlag,
	}

	switch kind {
	case m.KindVariable:
		if addTypeFlag == "" {
			return spec, fmt.Errorf("--type is required for a variable")
		}

		spec.Type = addTypeFlag
		spec.Initializer = addInitFlag
	case m.KindMethod:
		spec.Type = addTypeFlag
		spec.Parameters = addParamFlags
		spec.BodyIndent = 2 * settings.Indent

		if addBodyFileFlag != "" {
			body, err := readSource(cmd, addBodyFileFlag)
			if err != nil {
				return spec, err
			}

			spec.BodyLines, _ = domain.LoadMethodBody(body, spec.BodyIndent)
		}
	}

	return spec, nil
}

// readSource reads a file, or stdin when name is "-".
func readSource(cmd *cobra.Command, name string) (string, error) {
	var (
		data []byte
		err  error
	)

	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	return string(data), nil
}

func init() {
	rootCmd.AddCommand(addCmd)
}
