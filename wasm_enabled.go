//go:build js && wasm

package main

import (
	"strconv"
	"syscall/js"
)

const bestScoreKey = "binaryTetrisHighScore"

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	username := js.Global().Get("username")
	if username.IsUndefined() || username.IsNull() {
		return "browser"
	}
	return username.String()
}

// WriteFile does nothing in the browser, there is no disk to record
// playthroughs to.
func WriteFile(name string, data []byte) {
}

func LoadLocalUserData(username string) (u UserData) {
	val := js.Global().Get("localStorage").Call("getItem", bestScoreKey)
	if val.IsNull() || val.IsUndefined() {
		return
	}
	score, err := strconv.ParseInt(val.String(), 10, 64)
	if err != nil {
		// Someone put garbage in the local storage, start over.
		return
	}
	u.BestScore = score
	return
}

func SaveLocalUserData(username string, u UserData) {
	js.Global().Get("localStorage").Call("setItem", bestScoreKey,
		strconv.FormatInt(u.BestScore, 10))
}
