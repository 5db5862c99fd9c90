package main

const (
	defaultSurveyCosts        = 15000.0
	defaultEngagementSalary   = 95000.0
	productivityPerEngagement = 0.02 // 2% productivity per engagement point
)

func engagementCore(p ParameterSet) ([]LineItem, []LineItem) {
	employees := p.Num("total_employees")
	salary := p.Or("avg_salary", defaultEngagementSalary)

	costs := []LineItem{
		{Label: "Program", Value: p.Num("engagement_program_cost")},
		{Label: "Surveys", Value: p.Or("survey_costs", defaultSurveyCosts)},
	}
	benefits := []LineItem{
		{Label: "Productivity Boost", Value: employees * salary * (p.Num("engagement_improvement") * productivityPerEngagement)},
		{Label: "Turnover Savings", Value: employees * pct(p.Num("current_turnover")) *
			pct(p.Num("retention_improvement")) * salary * replacementCostMultiple},
	}
	return costs, benefits
}

func calculateEngagementBasic(p ParameterSet) ROIResult {
	return newROIResult(engagementCore(p))
}

func calculateEngagementExpanded(p ParameterSet) ROIResult {
	costs, benefits := engagementCore(p)
	salary := p.Or("avg_salary", defaultEngagementSalary)

	benefits = append(benefits,
		LineItem{Label: "Absenteeism Reduction", Value: p.Num("total_employees") * p.Num("absence_days") *
			pct(p.Num("absenteeism_reduction")) * (salary / workingDaysYear)},
		LineItem{Label: "Customer Satisfaction", Value: p.Num("customer_facing_employees") *
			p.Num("revenue_per_employee") * pct(p.Num("customer_satisfaction_gain"))},
	)
	return newROIResult(costs, benefits)
}
