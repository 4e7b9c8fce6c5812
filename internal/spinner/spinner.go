package spinner

import (
	"fmt"
	"time"

	"github.com/eduardofuncao/pgbridge/internal/styles"
)

// Wait animates a pulse with a running timer until done is closed.
func Wait(done chan struct{}) {
	stages := []string{" ", ".", "o", "O", "@", "*"}
	var passed time.Duration
	for {
		for _, s := range stages {
			select {
			case <-done:
				fmt.Print("\r\033[2K")
				return
			default:
				fmt.Printf("\r%s %.2fs", styles.Success.Render(s), passed.Seconds())
				passed += 100 * time.Millisecond
				time.Sleep(100 * time.Millisecond)
			}
		}
	}
}
