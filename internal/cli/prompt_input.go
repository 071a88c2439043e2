package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptChoiceIO asks message until the answer is "y" or "n"
// (case-insensitive) and reports whether it was "y".
func promptChoiceIO(in io.Reader, out io.Writer, message string) (bool, error) {
	for {
		if out != nil {
			fmt.Fprint(out, message)
		}

		text, err := readPromptLine(in)
		answer := strings.TrimSpace(strings.ToLower(text))
		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}

// promptFloatIO asks message until the answer parses as a number accepted
// by check. Rejected answers print the reason and ask again.
func promptFloatIO(in io.Reader, out io.Writer, message string, check func(float64) error) (float64, error) {
	for {
		if out != nil {
			fmt.Fprint(out, message)
		}

		text, err := readPromptLine(in)
		text = strings.TrimSpace(text)
		if text != "" {
			v, parseErr := strconv.ParseFloat(text, 64)
			switch {
			case parseErr != nil:
				printRetry(out, "enter a number")
			case check != nil && check(v) != nil:
				printRetry(out, check(v).Error())
			default:
				return v, nil
			}
		}
		if err != nil {
			return 0, err
		}
	}
}

func printRetry(out io.Writer, reason string) {
	if out != nil {
		fmt.Fprintf(out, "Invalid input: %s.\n", reason)
	}
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
