// Package completion provides shell completion generation commands.
package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for fml.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	cmd.AddCommand(newShellCmd("bash", `Generate bash completion script for fml.

To load completions in your current shell session:

  source <(fml completion bash)

To load completions for every new session:

  # Linux
  fml completion bash > /etc/bash_completion.d/fml

  # macOS (requires bash-completion)
  fml completion bash > $(brew --prefix)/etc/bash_completion.d/fml`,
		func(cmd *cobra.Command) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		}))

	cmd.AddCommand(newShellCmd("zsh", `Generate zsh completion script for fml.

To load completions in your current shell session:

  source <(fml completion zsh)

To load completions for every new session:

  fml completion zsh > "${fpath[1]}/_fml"`,
		func(cmd *cobra.Command) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		}))

	cmd.AddCommand(newShellCmd("fish", `Generate fish completion script for fml.

To load completions in your current shell session:

  fml completion fish | source

To load completions for every new session:

  fml completion fish > ~/.config/fish/completions/fml.fish`,
		func(cmd *cobra.Command) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		}))

	cmd.AddCommand(newShellCmd("powershell", `Generate PowerShell completion script for fml.

To load completions in your current shell session:

  fml completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output of the
above command to your PowerShell profile.`,
		func(cmd *cobra.Command) error {
			return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}))

	return cmd
}

func newShellCmd(shell, long string, gen func(*cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:                   shell,
		Short:                 "Generate " + shell + " completion script",
		Long:                  long,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return gen(cmd)
		},
	}
}
