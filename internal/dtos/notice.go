package dtos

const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is the toast the client shows after an action.
type Notice struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func Success(msg string) Notice { return Notice{Type: NoticeSuccess, Message: msg} }

func Failure(msg string) Notice { return Notice{Type: NoticeError, Message: msg} }
