package service

import (
	"testing"
	"time"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	token, err := IssueAdminToken("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}

	exp, err := ParseAdminToken("test-secret", token)
	if err != nil {
		t.Fatalf("ParseAdminToken: %v", err)
	}
	if remaining := time.Until(exp); remaining < 55*time.Minute || remaining > time.Hour {
		t.Errorf("expiry %v not within the issued TTL", remaining)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := IssueAdminToken("secret-a", time.Hour)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}
	if _, err := ParseAdminToken("secret-b", token); err == nil {
		t.Error("token signed with a different secret must not verify")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseAdminToken("test-secret", tok); err == nil {
			t.Errorf("ParseAdminToken(%q) should fail", tok)
		}
	}
}

func TestIssueRequiresSecret(t *testing.T) {
	if _, err := IssueAdminToken("", time.Hour); err == nil {
		t.Error("empty secret must be rejected")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	token, err := IssueAdminToken("test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}
	if _, err := ParseAdminToken("test-secret", token); err == nil {
		t.Error("expired token must not verify")
	}
}
