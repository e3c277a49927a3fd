/*
Package inputsample provides an implementation of tree.Sample whose values
are read from an io.Reader as they are needed.
*/
package inputsample

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

/*
FeatureValueRequester represents a way to ask for feature values and to
reject the given ones.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature string, validValues []string) error
	RejectValueFor(feature string, value string, validValues []string) error
}

// Sample is a sample whose feature values are read from an io.Reader
type Sample struct {
	obtainedValues        map[string]string
	scanner               *bufio.Scanner
	featureValueRequester FeatureValueRequester
	validValues           map[string][]string
}

/*
New takes an io.Reader, a FeatureValueRequester and the valid values for
every feature and returns a sample whose ValueFor method requests the
value with the FeatureValueRequester and then reads it from the reader, one
value per line, trimmed of surrounding whitespace.

Lines will be read until a valid value for the feature is found, rejecting
invalid ones with the FeatureValueRequester's RejectValueFor method. Features
without valid values accept any value. Obtained values are remembered, so
every feature is asked once.
*/
func New(r io.Reader, featureValueRequester FeatureValueRequester, validValues map[string][]string) *Sample {
	return &Sample{
		obtainedValues:        make(map[string]string),
		scanner:               bufio.NewScanner(r),
		featureValueRequester: featureValueRequester,
		validValues:           validValues,
	}
}

func (rs *Sample) ValueFor(ctx context.Context, feature string) (string, error) {
	value, ok := rs.obtainedValues[feature]
	if ok {
		return value, nil
	}
	validValues := rs.validValues[feature]
	err := rs.featureValueRequester.RequestValueFor(feature, validValues)
	if err != nil {
		return "", err
	}
	for rs.scanner.Scan() {
		if err = ctx.Err(); err != nil {
			return "", err
		}
		line := strings.TrimSpace(rs.scanner.Text())
		if valid(line, validValues) {
			rs.obtainedValues[feature] = line
			return line, nil
		}
		err = rs.featureValueRequester.RejectValueFor(feature, line, validValues)
		if err != nil {
			return "", err
		}
	}
	err = rs.scanner.Err()
	if err != nil {
		return "", err
	}
	return "", fmt.Errorf("EOF when requesting value for %s", feature)
}

func valid(value string, validValues []string) bool {
	if len(validValues) == 0 {
		return true
	}
	for _, v := range validValues {
		if v == value {
			return true
		}
	}
	return false
}
