//go:build http_enabled

package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const serverUrl = "https://playful-patterns.com/"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// makeHttpRequest makes a POST HTTP request to an endpoint and returns the
// body of the response as a string.
func makeHttpRequest(url string, fields map[string]string, files map[string][]byte) string {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)
	for k, v := range fields {
		Check(writer.WriteField(k, v))
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k)
		Check(err)
		_, err = part.Write(v)
		Check(err)
	}
	Check(writer.Close())

	request, err := http.NewRequest("POST", url, &requestBody)
	Check(err)
	request.Header.Set("content-type", writer.FormDataContentType())

	response, err := httpClient.Do(request)
	Check(err)
	if err != nil {
		return ""
	}
	defer func(body io.ReadCloser) { Check(body.Close()) }(response.Body)
	if response.StatusCode != http.StatusOK {
		Check(fmt.Errorf("http request failed: %d", response.StatusCode))
	}
	data, err := io.ReadAll(response.Body)
	Check(err)
	return string(data)
}

func playthroughFields(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID) map[string]string {
	return map[string]string{
		"user":               user,
		"release_version":    strconv.FormatInt(releaseVersion, 10),
		"simulation_version": strconv.FormatInt(simulationVersion, 10),
		"input_version":      strconv.FormatInt(inputVersion, 10),
		"id":                 id.String()}
}

func InitializeIdInDbHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID) {
	makeHttpRequest(serverUrl+"submit-playthrough-binary-tetris.php",
		playthroughFields(user, releaseVersion, simulationVersion,
			inputVersion, id),
		map[string][]byte{})
}

func UploadDataToDbHttp(user string,
	releaseVersion int64,
	simulationVersion int64,
	inputVersion int64,
	id uuid.UUID, data []byte) {
	makeHttpRequest(serverUrl+"submit-playthrough-binary-tetris.php",
		playthroughFields(user, releaseVersion, simulationVersion,
			inputVersion, id),
		map[string][]byte{"playthrough": data})
}

func SetUserDataHttp(user string, data string) {
	makeHttpRequest(serverUrl+"set-user-data-binary-tetris.php",
		map[string]string{"user": user, "data": data},
		map[string][]byte{})
}

func GetUserDataHttp(user string) string {
	return makeHttpRequest(serverUrl+"get-user-data-binary-tetris.php",
		map[string]string{"user": user},
		map[string][]byte{})
}
