package services

import (
	"testing"

	"route-roster-service/internal/domain"
)

func intPtr(v int) *int { return &v }

func testRouteDescriptor() RouteDescriptor {
	drivers := []domain.Driver{
		{ID: 10, FirstName: "Ann", LastName: "Lee", Capacity: 20, EmployeeStatus: domain.EmployeeStatusEmployee},
		{ID: 11, FirstName: "Cal", LastName: "Orr", Capacity: 8, EmployeeStatus: domain.EmployeeStatusContractor},
	}
	return RouteDescriptor{Drivers: NewDriverIndex(drivers)}
}

func TestRouteDescriptorResolvesAssignedDriver(t *testing.T) {
	rd := testRouteDescriptor()
	r := domain.Route{ID: 1, AssignedTo: intPtr(10)}

	if got := rd.DriverFullName(r); got != "Ann Lee" {
		t.Fatalf("full name = %q, want %q", got, "Ann Lee")
	}
	if got := rd.DriverCapacity(r); got != "20" {
		t.Fatalf("capacity = %q, want %q", got, "20")
	}
	if got := rd.DriverEmployeeStatus(r); got != "Employee" {
		t.Fatalf("status = %q, want %q", got, "Employee")
	}
	if !rd.IsEmployee(r) {
		t.Fatal("expected employee route")
	}
}

func TestRouteDescriptorDegradesOnDriverMiss(t *testing.T) {
	rd := testRouteDescriptor()

	// unresolved assignment and no assignment behave the same
	for _, r := range []domain.Route{
		{ID: 1, AssignedTo: intPtr(99)},
		{ID: 2, AssignedTo: nil},
	} {
		if got := rd.DriverFullName(r); got != "" {
			t.Fatalf("route %d: full name = %q, want empty", r.ID, got)
		}
		if got := rd.DriverCapacity(r); got != "" {
			t.Fatalf("route %d: capacity = %q, want empty", r.ID, got)
		}
		if rd.IsEmployee(r) {
			t.Fatalf("route %d: unresolved driver must not count as employee", r.ID)
		}
	}
}

func TestPhonePolicyFollowsDriverStatus(t *testing.T) {
	rd := testRouteDescriptor()

	if !rd.CanShowPhone(domain.Route{AssignedTo: intPtr(10)}) {
		t.Fatal("employee route should disclose phones")
	}
	if rd.CanShowPhone(domain.Route{AssignedTo: intPtr(11)}) {
		t.Fatal("contractor route must not disclose phones")
	}
}

func TestFormatRouteDate(t *testing.T) {
	if got := FormatRouteDate("2023-04-07T10:00:00Z"); got != "04/07/2023" {
		t.Fatalf("date = %q, want %q", got, "04/07/2023")
	}
}

func TestFormatRouteDateDoesNotPanicOnShortInput(t *testing.T) {
	// Garbled output is acceptable for malformed input; panicking is not.
	for _, in := range []string{"", "2023", "2023-04", "x"} {
		_ = FormatRouteDate(in)
	}
}

func TestRoundMetric(t *testing.T) {
	if got := RoundMetric(12.6); got != 13 {
		t.Fatalf("RoundMetric(12.6) = %d, want 13", got)
	}
	if got := RoundMetric(45.4); got != 45 {
		t.Fatalf("RoundMetric(45.4) = %d, want 45", got)
	}
}

func testStopDescriptor() StopDescriptor {
	recipients := []domain.Recipient{
		{
			ID:        100,
			FirstName: "Bob",
			LastName:  "Ray",
			Phone:     "555-1111",
			Location:  domain.Address{RoomNumber: domain.NoRoomNumber},
		},
		{
			ID:        101,
			FirstName: "Dee",
			LastName:  "Fox",
			Phone:     "555-2222",
			Comments:  "leave at door",
			Location:  domain.Address{RoomNumber: "14B"},
		},
	}
	return StopDescriptor{Recipients: NewRecipientIndex(recipients)}
}

func TestStopDescriptorResolvesRecipient(t *testing.T) {
	sd := testStopDescriptor()
	s := domain.Stop{RecipientID: 101}

	if got := sd.RecipientFullName(s); got != "Dee Fox" {
		t.Fatalf("name = %q, want %q", got, "Dee Fox")
	}
	if got := sd.Phone(s); got != "555-2222" {
		t.Fatalf("phone = %q, want %q", got, "555-2222")
	}
	if got := sd.Comment(s); got != "leave at door" {
		t.Fatalf("comment = %q, want %q", got, "leave at door")
	}
	if got := sd.RoomNumber(s); got != "14B" {
		t.Fatalf("room = %q, want %q", got, "14B")
	}
}

func TestStopDescriptorSuppressesRoomNumberSentinel(t *testing.T) {
	sd := testStopDescriptor()

	if got := sd.RoomNumber(domain.Stop{RecipientID: 100}); got != "" {
		t.Fatalf("room = %q, want empty for %q sentinel", got, domain.NoRoomNumber)
	}
}

func TestStopDescriptorDefaultsEmptyComment(t *testing.T) {
	sd := testStopDescriptor()

	if got := sd.Comment(domain.Stop{RecipientID: 100}); got != "" {
		t.Fatalf("comment = %q, want empty", got)
	}
}

func TestStopDescriptorDegradesOnRecipientMiss(t *testing.T) {
	sd := testStopDescriptor()
	s := domain.Stop{RecipientID: 999}

	if got := sd.RecipientFullName(s); got != "" {
		t.Fatalf("name = %q, want empty on miss", got)
	}
	if got := sd.Phone(s); got != "" {
		t.Fatalf("phone = %q, want empty on miss", got)
	}
	if got := sd.RoomNumber(s); got != "" {
		t.Fatalf("room = %q, want empty on miss", got)
	}
}
