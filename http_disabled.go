//go:build !http_enabled

package main

import (
	"github.com/google/uuid"
)

// Without http_enabled the game never talks to a server: uploads are dropped
// and there is no remote user data, so LoadUserData falls back to the local
// copy.

func InitializeIdInDbHttp(string, int64, int64, int64, uuid.UUID) {}

func UploadDataToDbHttp(string, int64, int64, int64, uuid.UUID, []byte) {}

func SetUserDataHttp(string, string) {}

func GetUserDataHttp(string) string {
	return ""
}
