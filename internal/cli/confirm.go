package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm prompts for a yes/no answer on stdin before a destructive
// call goes out. Anything other than y/yes aborts.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
