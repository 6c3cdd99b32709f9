package command

import (
	commandHandler "fieldforce/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewAdminKeyHandler)

type Command struct {
	adminKeyCommandHandler *commandHandler.AdminKeyHandler
}

// NewCommand .
func NewCommand(
	adminKeyCommandHandler *commandHandler.AdminKeyHandler,
) *Command {
	return &Command{
		adminKeyCommandHandler: adminKeyCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "admin-key [adminID]",
			Short: "generate an admin API key",
			Run: func(cmd *cobra.Command, args []string) {
				command, cleanup, err := newCmd()
				if err != nil {
					panic(err)
				}
				defer cleanup()

				command.adminKeyCommandHandler.Generate(cmd, args)
			},
		},
	)
}
