package mymemory

import (
	"bytes"
	"strconv"
)

// apiResponse is the body of MyMemory's GET /get endpoint.
type apiResponse struct {
	ResponseData    apiResponseData `json:"responseData"`
	ResponseStatus  statusCode      `json:"responseStatus"`
	ResponseDetails string          `json:"responseDetails"`
	QuotaFinished   bool            `json:"quotaFinished"`
}

type apiResponseData struct {
	TranslatedText string  `json:"translatedText"`
	Match          float64 `json:"match"`
}

// statusCode accepts both 200 and "200": MyMemory quotes the status on
// some error paths.
type statusCode int

func (s *statusCode) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*s = 0
		return nil
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return err
	}
	*s = statusCode(n)
	return nil
}
