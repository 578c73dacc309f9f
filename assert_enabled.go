//go:build assert_enabled

package main

import "fmt"

func Assert(condition bool) {
	if !condition {
		Check(fmt.Errorf("assert failed"))
	}
}
