package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectMatcherByCode(t *testing.T) {
	matcher := NewSubjectMatcherService(testStore(t))

	// Code lookup wins even when the name points elsewhere.
	subject := matcher.Match("01006020", "COMPUTER PROGRAMMING")
	require.NotNil(t, subject)
	assert.Equal(t, "subj-db", subject.ID)
}

func TestSubjectMatcherByExactName(t *testing.T) {
	matcher := NewSubjectMatcherService(testStore(t))

	subject := matcher.Match("99999999", "computer programming")
	require.NotNil(t, subject)
	assert.Equal(t, "subj-prog", subject.ID)
}

func TestSubjectMatcherByContainment(t *testing.T) {
	matcher := NewSubjectMatcherService(testStore(t))

	// Course name contains the subject name.
	subject := matcher.Match("99999999", "ADVANCED COMPUTER PROGRAMMING")
	require.NotNil(t, subject)
	assert.Equal(t, "subj-prog", subject.ID)

	// Subject name contains the course name.
	subject = matcher.Match("99999999", "DATABASE")
	require.NotNil(t, subject)
	assert.Equal(t, "subj-db", subject.ID)
}

func TestSubjectMatcherContainmentTieBreak(t *testing.T) {
	matcher := NewSubjectMatcherService(testStore(t))

	// "COMPUTER" is a substring of both Computer Programming and Computer
	// Networks; the first subject in dataset order wins.
	subject := matcher.Match("99999999", "COMPUTER")
	require.NotNil(t, subject)
	assert.Equal(t, "subj-prog", subject.ID)
}

func TestSubjectMatcherNoMatch(t *testing.T) {
	matcher := NewSubjectMatcherService(testStore(t))

	assert.Nil(t, matcher.Match("99999999", "UNDERWATER BASKET WEAVING"))
}
