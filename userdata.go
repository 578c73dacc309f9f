package main

import (
	"github.com/goccy/go-yaml"
)

// UserData is what the game remembers about a player between sessions.
type UserData struct {
	BestScore int64 `yaml:"BestScore"`
}

// RecordScore keeps score as the best score if it beats the current one. It
// returns true if the best score changed.
func (u *UserData) RecordScore(score int64) bool {
	if score <= u.BestScore {
		return false
	}
	u.BestScore = score
	return true
}

// LoadUserData prefers what the server knows about the user and falls back
// to what was saved locally. Without a server (the default build) it's
// always the local copy.
func LoadUserData(username string) (u UserData) {
	remote := GetUserDataHttp(username)
	if remote != "" {
		err := yaml.Unmarshal([]byte(remote), &u)
		Check(err)
		if err == nil {
			return
		}
	}
	return LoadLocalUserData(username)
}

// UploadUserData sends every value it receives to the server. It is meant to
// run in its own goroutine so that the game never waits for the network.
func UploadUserData(username string, ch chan UserData) {
	for u := range ch {
		data, err := yaml.Marshal(u)
		Check(err)
		SetUserDataHttp(username, string(data))
	}
}
