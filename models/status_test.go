package models

import "testing"

func TestStatusEnumsRejectTypos(t *testing.T) {
	if !ChurnReceived.IsValid() || !ChurnConfirmed.IsValid() {
		t.Fatalf("known churn statuses must be valid")
	}
	if ChurnStatus("접수중").IsValid() {
		t.Fatalf("typo must be rejected")
	}

	if !CSReceived.IsValid() || CSStatus("처리 중").IsValid() {
		t.Fatalf("cs status validation broken")
	}

	if !MeetingOnboarded.IsValid() || MeetingResult("미팅예쩡").IsValid() {
		t.Fatalf("meeting result validation broken")
	}
}
