package upstream

import "errors"

// Fixed user-facing messages. The frontend shows these verbatim in banners.
const (
	MsgNetworkError       = "通信エラーが発生しました"
	MsgSaveFailed         = "保存に失敗しました"
	MsgSaved              = "保存しました"
	MsgInvalidCredentials = "メールアドレスまたはパスワードが正しくありません"
	MsgEmailTaken         = "このメールアドレスは既に登録されています"
	MsgSessionExpired     = "セッションの有効期限が切れました。再度ログインしてください"
)

// codeMessages maps upstream structured error codes to user messages.
var codeMessages = map[string]string{
	"invalid_credentials": MsgInvalidCredentials,
	"email_taken":         MsgEmailTaken,
	"duplicate_email":     MsgEmailTaken,
	"token_expired":       MsgSessionExpired,
	"invalid_token":       MsgSessionExpired,
}

// UserMessage maps any error from this package to the message shown to the
// user: structured upstream codes get their specific message, everything
// else falls back to the generic network error.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg, ok := codeMessages[apiErr.Code]; ok {
			return msg
		}
	}
	return MsgNetworkError
}
