package breeds

import "time"

// Breed representa una raza de perro registrada en el catálogo.
// El id y los timestamps los genera el store; el resto viene del cliente.
type Breed struct {
	ID          int64
	Name        string
	Origin      string
	Size        string
	Temperament string
	Lifespan    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Input agrupa los seis campos editables de una raza (create y update
// comparten la misma forma). Todos son obligatorios y no vacíos; size y
// lifespan son texto libre, el cliente sugiere valores pero el server no
// los restringe.
type Input struct {
	Name        string `validate:"required"`
	Origin      string `validate:"required"`
	Size        string `validate:"required"`
	Temperament string `validate:"required"`
	Lifespan    string `validate:"required"`
	Description string `validate:"required"`
}

// Seed devuelve el catálogo base que se inserta cuando el store está vacío.
func Seed() []Input {
	return []Input{
		{
			Name:        "Golden Retriever",
			Origin:      "Scotland",
			Size:        "Large",
			Temperament: "Friendly, Intelligent, Devoted",
			Lifespan:    "10-12 years",
			Description: "The Golden Retriever is a medium-large gun dog that was bred to retrieve shot waterfowl, such as ducks and upland game birds, during hunting and shooting parties.",
		},
		{
			Name:        "German Shepherd",
			Origin:      "Germany",
			Size:        "Large",
			Temperament: "Confident, Courageous, Smart",
			Lifespan:    "9-13 years",
			Description: "The German Shepherd is a breed of medium to large-sized working dog that originated in Germany. Known for their intelligence and versatility.",
		},
		{
			Name:        "French Bulldog",
			Origin:      "France",
			Size:        "Small",
			Temperament: "Adaptable, Playful, Smart",
			Lifespan:    "10-12 years",
			Description: "The French Bulldog is a small breed of domestic dog. Frenchies were the result in the 1800s of a cross between bulldog ancestors imported from England and local ratters in Paris.",
		},
		{
			Name:        "Labrador Retriever",
			Origin:      "Canada",
			Size:        "Large",
			Temperament: "Outgoing, Active, Friendly",
			Lifespan:    "10-14 years",
			Description: "The Labrador Retriever is a medium-large breed of retriever-gun dog. The Labrador is the most popular breed of dog in many countries around the world.",
		},
		{
			Name:        "Beagle",
			Origin:      "England",
			Size:        "Medium",
			Temperament: "Friendly, Curious, Merry",
			Lifespan:    "13-16 years",
			Description: "The Beagle is a breed of small hound that is similar in appearance to the much larger foxhound. The beagle is a scent hound, developed primarily for hunting hare.",
		},
	}
}
