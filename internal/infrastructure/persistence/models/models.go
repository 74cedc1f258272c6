package models

// All lists every persistence model in dependency order, for AutoMigrate
// and test setup.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&OrganizationModel{},
		&MembershipModel{},
		&StrategicObjectiveModel{},
		&ProgramModel{},
		&SubProgramModel{},
		&StrategicInitiativeModel{},
		&PerformanceMeasureModel{},
		&MainActivityModel{},
		&ActivityBudgetModel{},
		&CostingAssumptionModel{},
		&PlanModel{},
		&PlanReviewModel{},
	}
}
