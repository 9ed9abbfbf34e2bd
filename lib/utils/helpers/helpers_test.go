package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`ToSnakeCase check`, func(t *testing.T) {
		require.Equal(t, "applied_date", ToSnakeCase("AppliedDate"))
		require.Equal(t, "interview_date", ToSnakeCase("InterviewDate"))
		require.Equal(t, "name", ToSnakeCase("Name"))
	})

	t.Run(`MailtoEscape check`, func(t *testing.T) {
		require.Equal(t, "Hello%20Ada", MailtoEscape("Hello Ada"))
		require.Equal(t, "Re%3A%20Engineer%20%26%20more", MailtoEscape("Re: Engineer & more"))
		require.Equal(t, "%D0%9F%D1%80%D0%B8%D0%B2%D0%B5%D1%82", MailtoEscape("Привет"))
	})
}
