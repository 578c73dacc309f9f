//go:build !(js && wasm)

package main

import (
	"github.com/goccy/go-yaml"
	"os"
)

func getUsername() string {
	return "local"
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func userDataFile(username string) string {
	return "user-data-" + username + ".yaml"
}

func LoadLocalUserData(username string) (u UserData) {
	data, err := os.ReadFile(userDataFile(username))
	if err != nil {
		// No best score saved yet.
		return
	}
	Check(yaml.Unmarshal(data, &u))
	return
}

func SaveLocalUserData(username string, u UserData) {
	SaveYAML(userDataFile(username), u)
}
