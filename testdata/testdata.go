package testdata

import (
	"bufio"
	"os"
)

// LoadTestFile returns the non-empty lines of the file at path.
func LoadTestFile(path string) []string {
	file, err := os.Open(path)
	if err != nil {
		panic("could not open test file " + path + ": " + err.Error())
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		panic(err)
	}
	return words
}
