package dsmr

import (
	"regexp"
	"strings"
)

// Pre DSMR 4 meters write the gas reading on its own line:
//
//	0-1:24.3.0(121106140000)(00)(60)(1)(0-1:24.2.1)(m3)
//	(00012.345)
var mangledGasPattern = regexp.MustCompile(`(0-1:24\.3\.0)\((\d+)\)[^\r\n]*\r\n\((\d+(?:\.\d+)?)\)`)

func hasContinuationLine(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, "(") {
			return true
		}
	}
	return false
}

// repairMangled merges the split gas reading into 0-1:24.3.0(timestamp)(value*m3).
// Other continuation lines are left alone.
func repairMangled(lines []string) []string {
	text := strings.Join(lines, lineSeparator)
	text = mangledGasPattern.ReplaceAllString(text, "${1}(${2})(${3}*m3)")
	return splitLines(text)
}
