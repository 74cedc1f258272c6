// Package budget holds activity budgets and the funding rule that keeps
// their funding within the estimated cost.
package budget

type CalculationType string

const (
	CalculationWithTool    CalculationType = "WITH_TOOL"
	CalculationWithoutTool CalculationType = "WITHOUT_TOOL"
)

func (c CalculationType) IsValid() bool {
	return c == CalculationWithTool || c == CalculationWithoutTool
}

func (c CalculationType) String() string {
	return string(c)
}

type ActivityType string

const (
	ActivityTraining    ActivityType = "Training"
	ActivityMeeting     ActivityType = "Meeting"
	ActivityWorkshop    ActivityType = "Workshop"
	ActivityPrinting    ActivityType = "Printing"
	ActivitySupervision ActivityType = "Supervision"
	ActivityProcurement ActivityType = "Procurement"
	ActivityOther       ActivityType = "Other"
)

var validActivityTypes = map[ActivityType]bool{
	ActivityTraining:    true,
	ActivityMeeting:     true,
	ActivityWorkshop:    true,
	ActivityPrinting:    true,
	ActivitySupervision: true,
	ActivityProcurement: true,
	ActivityOther:       true,
}

func (a ActivityType) IsValid() bool {
	return validActivityTypes[a]
}

func (a ActivityType) String() string {
	return string(a)
}

type Location string

const (
	LocationAddisAbaba Location = "Addis_Ababa"
	LocationAdama      Location = "Adama"
	LocationBahirdar   Location = "Bahirdar"
	LocationMekele     Location = "Mekele"
	LocationHawassa    Location = "Hawassa"
	LocationGambella   Location = "Gambella"
	LocationAfar       Location = "Afar"
	LocationSomali     Location = "Somali"
)

var validLocations = map[Location]bool{
	LocationAddisAbaba: true,
	LocationAdama:      true,
	LocationBahirdar:   true,
	LocationMekele:     true,
	LocationHawassa:    true,
	LocationGambella:   true,
	LocationAfar:       true,
	LocationSomali:     true,
}

func (l Location) IsValid() bool {
	return validLocations[l]
}

func (l Location) String() string {
	return string(l)
}

type CostType string

const (
	CostPerDiem               CostType = "per_diem"
	CostAccommodation         CostType = "accommodation"
	CostVenue                 CostType = "venue"
	CostTransportLand         CostType = "transport_land"
	CostTransportAir          CostType = "transport_air"
	CostParticipantFlashDisk  CostType = "participant_flash_disk"
	CostParticipantStationary CostType = "participant_stationary"
	CostSessionFlipChart      CostType = "session_flip_chart"
	CostSessionMarker         CostType = "session_marker"
	CostSessionTonerPaper     CostType = "session_toner_paper"
)

var validCostTypes = map[CostType]bool{
	CostPerDiem:               true,
	CostAccommodation:         true,
	CostVenue:                 true,
	CostTransportLand:         true,
	CostTransportAir:          true,
	CostParticipantFlashDisk:  true,
	CostParticipantStationary: true,
	CostSessionFlipChart:      true,
	CostSessionMarker:         true,
	CostSessionTonerPaper:     true,
}

func (c CostType) IsValid() bool {
	return validCostTypes[c]
}

func (c CostType) String() string {
	return string(c)
}
