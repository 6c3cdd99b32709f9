package identity

import (
	"context"
	"strings"

	"fieldforce/config"
	"fieldforce/internal/core"
	"fieldforce/internal/telemetry"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// FirebaseBridge 以 Firebase Auth 作為身分橋接端
type FirebaseBridge struct {
	authClient *auth.Client
	trace      *telemetry.Trace
	logger     *zap.Logger
}

func NewFirebaseBridge(logger *zap.Logger, trace *telemetry.Trace, conf *config.Configuration) (Bridge, error) {
	var opts []option.ClientOption
	if conf.Identity.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Identity.CredentialsFile))
	}

	app, newAppError := firebase.NewApp(context.Background(), nil, opts...)
	if newAppError != nil {
		logger.Error("failed to initialize Firebase app", zap.Error(newAppError))
		return nil, newAppError
	}

	authClient, authError := app.Auth(context.Background())
	if authError != nil {
		logger.Error("failed to get Firebase Auth client", zap.Error(authError))
		return nil, authError
	}

	logger.Info("Connected to Firebase Auth")
	return &FirebaseBridge{authClient: authClient, trace: trace, logger: logger}, nil
}

func (bridge *FirebaseBridge) CreateAccount(contextValue context.Context, loginID string, password string) (_ *Identity, returnedError error) {
	contextValue, span, endSpan := bridge.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceIdentityMeta{Op: "create", LoginID: loginID}
	bridge.trace.ApplyTraceAttributes(span, traceMetadata)

	userRecord, createError := bridge.authClient.CreateUser(contextValue, (&auth.UserToCreate{}).
		Email(loginID).
		Password(password).
		Disabled(false))
	if createError != nil {
		returnedError = translateAuthError(createError)
		return nil, returnedError
	}

	traceMetadata.UID = userRecord.UID
	bridge.trace.ApplyTraceAttributes(span, traceMetadata)
	return &Identity{UID: userRecord.UID, LoginID: loginID}, nil
}

func (bridge *FirebaseBridge) DeleteAccount(contextValue context.Context, uid string) (returnedError error) {
	contextValue, span, endSpan := bridge.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceIdentityMeta{Op: "delete", UID: uid}
	bridge.trace.ApplyTraceAttributes(span, traceMetadata)

	if deleteError := bridge.authClient.DeleteUser(contextValue, uid); deleteError != nil {
		if auth.IsUserNotFound(deleteError) {
			returnedError = ErrAccountMissing
			return returnedError
		}
		returnedError = deleteError
		return returnedError
	}
	return nil
}

func (bridge *FirebaseBridge) VerifyToken(contextValue context.Context, idToken string) (_ string, returnedError error) {
	contextValue, span, endSpan := bridge.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	traceMetadata := core.TraceIdentityMeta{Op: "verify"}
	bridge.trace.ApplyTraceAttributes(span, traceMetadata)

	token, verifyError := bridge.authClient.VerifyIDToken(contextValue, idToken)
	if verifyError != nil {
		returnedError = ErrInvalidToken
		return "", returnedError
	}

	traceMetadata.UID = token.UID
	bridge.trace.ApplyTraceAttributes(span, traceMetadata)
	return token.UID, nil
}

// translateAuthError 收斂 SDK 錯誤成套件層級語意
func translateAuthError(err error) error {
	if auth.IsEmailAlreadyExists(err) {
		return ErrAccountExists
	}
	// 密碼政策錯誤 SDK 沒有專屬判斷式，靠訊息比對
	if strings.Contains(strings.ToUpper(err.Error()), "INVALID_PASSWORD") ||
		strings.Contains(strings.ToLower(err.Error()), "password") {
		return ErrWeakPassword
	}
	return err
}
