package fit

import (
	"fmt"
	"io"
	"os"

	"github.com/Manu343726/autosized/pkg/width/emit"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Keeps the original spelling of the literal whether it is quoted or a bare
// YAML number
type literalString string

func (l *literalString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %v: literal must be a scalar", node.Line)
	}

	*l = literalString(node.Value)

	return nil
}

// A single width selection request of a batch file
type batchRequest struct {
	// The integer literal to fit
	Literal literalString `yaml:"literal"`
	// Selection policy: unsigned, signed or auto. Defaults to auto
	Policy string `yaml:"policy"`
	// Emit mode: type or value. Defaults to type
	Emit string `yaml:"emit"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Fit a YAML list of integer literals in one go",
	Long: `Reads a YAML list of width selection requests and emits one rendered result
per line, in request order. Pass '-' as the file to read from stdin.

Each request is a mapping with a mandatory 'literal' key and optional
'policy' (unsigned, signed, auto) and 'emit' (type, value) keys:

  - literal: 300
    policy: unsigned
  - literal: -200
    policy: signed
    emit: value
  - literal: 10

The first invalid request aborts the whole batch; nothing is substituted for
requests that fail.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

func runBatch(cmd *cobra.Command, args []string) {
	path := args[0]

	var input []byte
	var err error

	if path == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(path)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "fit batch: %v\n", err)
		os.Exit(1)
	}

	var requests []batchRequest

	if err := yaml.Unmarshal(input, &requests); err != nil {
		fmt.Fprintf(os.Stderr, "fit batch: %v\n", err)
		os.Exit(1)
	}

	for i, request := range requests {
		policy := request.Policy

		if policy == "" {
			policy = policyAuto
		}

		modeName := request.Emit

		if modeName == "" {
			modeName = emit.Mode_Type.String()
		}

		mode, err := emit.ParseMode(modeName)

		if err != nil {
			fmt.Fprintf(os.Stderr, "fit batch: request [%v]: %v\n", i, err)
			os.Exit(1)
		}

		descriptor, value, err := fitLiteral(policy, string(request.Literal))

		if err != nil {
			fmt.Fprintf(os.Stderr, "fit batch: request [%v]: %v\n", i, err)
			os.Exit(1)
		}

		fmt.Println(emit.Render(descriptor, value, mode))
	}
}
