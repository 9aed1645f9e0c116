package model

import (
	"fmt"
	"strconv"
	"strings"
)

// optionSep separates the rating from its label in an option string.
const optionSep = " - "

// Option is one entry of a categorical selection.
type Option struct {
	Value int
	Label string
}

// String renders the option as "N - label".
func (o Option) String() string {
	return fmt.Sprintf("%d%s%s", o.Value, optionSep, o.Label)
}

// CriticalityOptions are the business criticality choices. 1 is most critical.
var CriticalityOptions = []Option{
	{1, "Mission Critical"},
	{2, "Highly Critical"},
	{3, "Important"},
	{4, "Low Impact"},
	{5, "Non Critical"},
}

// ClassificationOptions are the data classification choices. 1 is most restricted.
var ClassificationOptions = []Option{
	{1, "Highly Restricted"},
	{2, "Restricted"},
	{3, "Internal"},
	{4, "Confidential"},
	{5, "Public"},
}

// ParseOption extracts the leading integer from "N - label". A bare "N" is
// accepted too.
func ParseOption(s string) (int, error) {
	head := strings.TrimSpace(s)
	if idx := strings.Index(head, optionSep); idx >= 0 {
		head = strings.TrimSpace(head[:idx])
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("option %q has no leading integer", s)
	}
	return n, nil
}

// OptionLabel returns the label for value in opts, or "" if absent.
func OptionLabel(opts []Option, value int) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}
