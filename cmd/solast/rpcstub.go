package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aledsdavies/solast/internal/ast"
	"github.com/aledsdavies/solast/pkg/solidity"
	"github.com/aledsdavies/solast/pkg/solidity/abi"
)

// rpcCallRequest is a JSON-RPC 2.0 request shaped for an eth_call, with
// the ABI method list's first matching method named in params[0].data as
// a human-readable placeholder rather than an encoded selector+arguments
// (ABI encoding is out of scope; see pkg/solidity/abi).
type rpcCallRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int           `json:"id"`
	Method  string        `json:"method"`
	Params  []rpcCallArgs `json:"params"`
}

type rpcCallArgs struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

// newRPCStubCmd renders the first contract/interface in a file, and one
// named method within it, as an eth_call request skeleton. It never opens
// a network connection; the "client" named in this front end's external-
// interface surface is still the caller's responsibility.
func newRPCStubCmd(log **zap.Logger) *cobra.Command {
	var contractFlag, methodFlag, toFlag string

	cmd := &cobra.Command{
		Use:   "rpc-stub <file>",
		Short: "Render one contract method as an eth_call JSON-RPC request skeleton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			tree := solidity.Parse(src)

			contractNode, err := findContract(tree, contractFlag)
			if err != nil {
				return err
			}

			methods := abi.Extract(tree, contractNode, *log)
			var method *abi.Method
			for i := range methods {
				if methodFlag == "" || methods[i].Name == methodFlag {
					method = &methods[i]
					break
				}
			}
			if method == nil {
				return fmt.Errorf("no method %q found (contract has %d methods)", methodFlag, len(methods))
			}

			req := rpcCallRequest{
				JSONRPC: "2.0",
				ID:      1,
				Method:  "eth_call",
				Params: []rpcCallArgs{{
					To:   toFlag,
					Data: fmt.Sprintf("0x<selector for %s(%s)>", method.Name, inputTypes(method.Inputs)),
				}},
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(req)
		},
	}
	cmd.Flags().StringVar(&contractFlag, "contract", "", "Contract/interface name (defaults to the first one found)")
	cmd.Flags().StringVar(&methodFlag, "method", "", "Method name (defaults to the first one found)")
	cmd.Flags().StringVar(&toFlag, "to", "0x0000000000000000000000000000000000000000", "Target contract address")
	return cmd
}

func findContract(tree *ast.Tree, name string) (ast.Index, error) {
	for _, unit := range solidity.SourceUnits(tree) {
		n := tree.Node(unit)
		switch n.Tag {
		case ast.ContractDecl, ast.AbstractContractDecl, ast.InterfaceDecl, ast.LibraryDecl:
			view := tree.Contract(unit)
			if name == "" || string(tree.TokenText(view.Identifier)) == name {
				return unit, nil
			}
		}
	}
	return 0, fmt.Errorf("no contract/interface %q found", name)
}

func inputTypes(params []abi.Param) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ","
		}
		out += p.Type
	}
	return out
}
