package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// ErrorResponseModel is sent for rejected requests. FieldErrors maps the
// offending request parameter to its messages.
type ErrorResponseModel struct {
	Code        int                 `json:"code"`
	CurrentTime int64               `json:"currentTime"`
	Text        string              `json:"text"`
	Version     int                 `json:"version"`
	FieldErrors map[string][]string `json:"fieldErrors,omitempty"`
}

// ListData wraps a list of entries
type ListData struct {
	List interface{} `json:"list"`
}

// EntryData wraps a single entry
type EntryData struct {
	Entry interface{} `json:"entry"`
}

// ResponseCurrentTime is the currentTime value of a response, in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

func NewListResponse(list interface{}) ResponseModel {
	return NewOKResponse(ListData{List: list})
}

func NewEntryResponse(entry interface{}) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry})
}

func NewErrorResponse(code int, text string, fieldErrors map[string][]string) ErrorResponseModel {
	return ErrorResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Text:        text,
		Version:     2,
		FieldErrors: fieldErrors,
	}
}
