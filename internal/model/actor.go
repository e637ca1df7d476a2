package model

// Actor is one economic participant owning a balance sheet.
type Actor string

const (
	ActorBanks       Actor = "Banks"
	ActorTreasury    Actor = "Treasury"
	ActorCapitalists Actor = "Capitalists"
	ActorFirms       Actor = "Firms"
	ActorWorkers     Actor = "Workers"
)

// CreditActors is the actor set of a pure-credit economy.
func CreditActors() []Actor {
	return []Actor{ActorBanks, ActorCapitalists, ActorFirms, ActorWorkers}
}

// FiatActors is the actor set of a pure-fiat economy.
func FiatActors() []Actor {
	return []Actor{ActorTreasury, ActorCapitalists, ActorFirms, ActorWorkers}
}
