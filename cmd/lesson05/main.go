// Lesson 5 lights the crate and turns it from the keyboard.
package main

import (
	"gl-tutorial/internal/host"
	"gl-tutorial/lessons"
)

func main() {
	host.Main(lessons.LitCube())
}
