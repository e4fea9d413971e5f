package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/medreg/revalidation-backend/internal/services"
)

// fakeUpserter records every applied payload and can fail on demand.
type fakeUpserter struct {
	applied []services.DoctorPayload
	err     error
}

func (f *fakeUpserter) UpdateTrainee(_ context.Context, p services.DoctorPayload) error {
	if f.err != nil {
		return f.err
	}
	f.applied = append(f.applied, p)
	return nil
}

func TestHandle_AppliesValidPayload(t *testing.T) {
	up := &fakeUpserter{}
	s := &Subscriber{channel: "reval.gmc.doctor", svc: up}

	payload := []byte(`{
		"gmcReferenceNumber": "7012617",
		"doctorFirstName": "Jane",
		"doctorLastName": "Doe",
		"underNotice": "YES",
		"designatedBodyCode": "1-ABC"
	}`)
	s.handle(context.Background(), payload)

	if len(up.applied) != 1 {
		t.Fatalf("expected one upsert, got %d", len(up.applied))
	}
	got := up.applied[0]
	if got.GMCReferenceNumber != "7012617" || got.DoctorLastName != "Doe" || got.UnderNotice != "YES" {
		t.Fatalf("payload mangled: %+v", got)
	}
}

func TestHandle_SkipsUndecodablePayload(t *testing.T) {
	up := &fakeUpserter{}
	s := &Subscriber{channel: "c", svc: up}

	s.handle(context.Background(), []byte("not json at all"))

	if len(up.applied) != 0 {
		t.Fatalf("undecodable payload must be skipped, got %d upserts", len(up.applied))
	}
}

func TestHandle_SkipsPayloadWithoutGMCNumber(t *testing.T) {
	up := &fakeUpserter{}
	s := &Subscriber{channel: "c", svc: up}

	s.handle(context.Background(), []byte(`{"doctorFirstName":"Nameless"}`))

	if len(up.applied) != 0 {
		t.Fatalf("payload without id must be skipped, got %d upserts", len(up.applied))
	}
}

func TestHandle_StoreFailureDoesNotPanic(t *testing.T) {
	up := &fakeUpserter{err: errors.New("db down")}
	s := &Subscriber{channel: "c", svc: up}

	// Must log and move on; subsequent messages still flow.
	s.handle(context.Background(), []byte(`{"gmcReferenceNumber":"7012617"}`))

	up.err = nil
	s.handle(context.Background(), []byte(`{"gmcReferenceNumber":"7012618"}`))
	if len(up.applied) != 1 || up.applied[0].GMCReferenceNumber != "7012618" {
		t.Fatalf("subscriber did not recover after store failure: %+v", up.applied)
	}
}

func TestClose_NilSafe(t *testing.T) {
	var s *Subscriber
	if err := s.Close(); err != nil {
		t.Fatalf("nil subscriber Close: %v", err)
	}
	if err := (&Subscriber{}).Close(); err != nil {
		t.Fatalf("connectionless Close: %v", err)
	}
}
