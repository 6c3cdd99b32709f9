package storage

import (
	"context"
	"io"
)

// ResumeStore 履歷附件儲存端；回傳對外可讀 URL，寫入 application 文件
type ResumeStore interface {
	Upload(contextValue context.Context, jobID string, filename string, contentType string, content io.Reader) (publicURL string, returnedError error)
}
