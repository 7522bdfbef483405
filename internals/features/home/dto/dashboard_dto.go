package dto

import (
	busDTO "transportscolaire_backend/internals/features/transport/buses/dto"
)

// AdminStats : compteurs globaux + agregats analytiques de l'ecole.
type AdminStats struct {
	TotalStudents        int64   `json:"total_students"`
	PendingRegistrations int64   `json:"pending_registrations"`
	ApprovedStudents     int64   `json:"approved_students"`
	PaidStudents         int64   `json:"paid_students"`
	TotalTutors          int64   `json:"total_tutors"`
	TotalDrivers         int64   `json:"total_drivers"`
	TotalSupervisors     int64   `json:"total_supervisors"`
	TotalBuses           int64   `json:"total_buses"`
	TotalRoutes          int64   `json:"total_routes"`
	PendingPayments      int64   `json:"pending_payments"`
	TotalRevenue         float64 `json:"total_revenue"`
	PendingRevenue       float64 `json:"pending_revenue"`
	TotalExpenses        float64 `json:"total_expenses"`
	TotalAccidents       int64   `json:"total_accidents"`
	PendingRaises        int64   `json:"pending_raises"`
	AbsencesToday        int64   `json:"absences_today"`

	BusUsage          []BusUsageEntry       `json:"bus_usage"`
	StudentsByClass   []GroupCount          `json:"students_by_class"`
	StudentsByZone    []GroupCount          `json:"students_by_zone"`
	ByTransportType   []GroupCount          `json:"by_transport_type"`
	Gender            GenderBreakdown       `json:"gender"`
	DriverAccidents   []DriverAccidentEntry `json:"driver_accidents"`
	TopAbsentStudents []AbsentStudentEntry  `json:"top_absent_students"`
}

// GroupCount : une ligne de repartition (classe, zone, type de transport).
type GroupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// BusUsageEntry : occupation d'un bus par les eleves approuves.
type BusUsageEntry struct {
	Name          string  `json:"name"`
	Capacity      int     `json:"capacity"`
	Students      int64   `json:"students"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type GenderBreakdown struct {
	Boys  int64 `json:"garcons"`
	Girls int64 `json:"filles"`
}

type DriverAccidentEntry struct {
	Name      string `json:"name"`
	Accidents int64  `json:"accidents"`
}

type AbsentStudentEntry struct {
	Name     string `json:"name"`
	Class    string `json:"class"`
	Absences int    `json:"absences"`
}

// TutorDashboard : resume pour l'ecran d'accueil du tuteur.
type TutorDashboard struct {
	ChildrenCount       int64 `json:"children_count"`
	PendingChildren     int64 `json:"pending_children"`
	PendingPayments     int64 `json:"pending_payments"`
	UnreadNotifications int64 `json:"unread_notifications"`
}

// DriverDashboard : resume pour l'ecran d'accueil du chauffeur.
type DriverDashboard struct {
	Bus                 *busDTO.BusResponse `json:"bus,omitempty"`
	AccidentCount       int                 `json:"accident_count"`
	ExpensesThisMonth   float64             `json:"expenses_this_month"`
	PendingRaises       int64               `json:"pending_raises"`
	UnreadNotifications int64               `json:"unread_notifications"`
}

// SupervisorDashboard : resume pour l'ecran d'accueil du superviseur.
type SupervisorDashboard struct {
	Bus                 *busDTO.BusResponse `json:"bus,omitempty"`
	StudentCount        int64               `json:"student_count"`
	AbsencesToday       int64               `json:"absences_today"`
	UnreadNotifications int64               `json:"unread_notifications"`
}
