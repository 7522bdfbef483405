package constants

// Tarifs d'abonnement (en DH)
const (
	SubscriptionMonthly = "mensuel"
	SubscriptionYearly  = "annuel"

	AmountMonthly float64 = 300
	AmountYearly  float64 = 3000
)

// Remise familiale selon le nombre d'enfants approuves du meme tuteur.
// 1 enfant => 0%, 2 enfants => 10%, 3 et plus => 30%.
const (
	FamilyDiscountTwoChildren   = 10
	FamilyDiscountThreeChildren = 30
)

// Seuil d'accidents avant licenciement + amende fixe (en DH)
const (
	AccidentDismissalThreshold = 3
	AccidentFineAmount         = 1000
)

// Groupes de ramassage. Horaires fixes a l'echelle de l'ecole,
// independants des horaires du trajet.
const (
	BusGroupA = "A"
	BusGroupB = "B"

	GroupAScheduleText = "Groupe A (07h00-07h30 / 16h30-17h00)"
	GroupBScheduleText = "Groupe B (07h30-08h00 / 17h30-18h00)"
)

// SubscriptionAmount retourne le tarif de base pour un type d'abonnement.
func SubscriptionAmount(subscriptionType string) float64 {
	if subscriptionType == SubscriptionYearly {
		return AmountYearly
	}
	return AmountMonthly
}

// FamilyDiscountPercentage retourne le pourcentage de remise selon le
// nombre d'enfants approuves (celui en cours d'approbation inclus).
func FamilyDiscountPercentage(approvedChildren int64) int {
	switch {
	case approvedChildren >= 3:
		return FamilyDiscountThreeChildren
	case approvedChildren == 2:
		return FamilyDiscountTwoChildren
	default:
		return 0
	}
}

// GroupScheduleText retourne le libelle horaire fixe d'un groupe de bus.
func GroupScheduleText(busGroup string) string {
	if busGroup == BusGroupB {
		return GroupBScheduleText
	}
	return GroupAScheduleText
}
