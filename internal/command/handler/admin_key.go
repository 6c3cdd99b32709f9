package command

import (
	"fieldforce/config"
	"fieldforce/utils/apikey"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AdminKeyHandler 產生後台用的 X-API-Key
type AdminKeyHandler struct {
	logger *zap.Logger
	config *config.Configuration
}

func NewAdminKeyHandler(logger *zap.Logger, config *config.Configuration) *AdminKeyHandler {
	return &AdminKeyHandler{
		logger: logger,
		config: config,
	}
}

func (handler *AdminKeyHandler) Generate(cmd *cobra.Command, args []string) {
	adminID := "admin"
	if len(args) > 0 && args[0] != "" {
		adminID = args[0]
	}

	key, err := apikey.GenerateAdminKey(adminID, handler.config.App.SecretKey)
	if err != nil {
		cmd.PrintErrf("failed to generate admin key: %v\n", err)
		return
	}
	cmd.Printf("adminID: %s\nX-API-Key: %s\n", adminID, key)
}
