package maintenanceservice

import (
	"encoding/json"

	"github.com/Vlok123/carintel/internal/carintel/domain/models"
)

// Shared bcrypt hash for the demo accounts, which exist for manual
// testing against a fresh database.
const demoPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func sampleUsers() []models.User {
	return []models.User{
		{Email: "demo@carintel.nl", Name: "Demo", PasswordHash: demoPasswordHash, Role: models.RoleUser},        //nolint:exhaustruct
		{Email: "tester@carintel.nl", Name: "Tester", PasswordHash: demoPasswordHash, Role: models.RoleUser},    //nolint:exhaustruct
	}
}

func sampleSketches(userID int64) []models.Sketch {
	return []models.Sketch{
		{ //nolint:exhaustruct
			UserID:      userID,
			Title:       "Kop-staart A2",
			Location:    "A2 hmp 54.3",
			Description: "Kop-staartbotsing op de linkerrijstrook",
			Incidents:   json.RawMessage(`[{"type":"collision","lat":52.1,"lng":5.1}]`),
			Lines:       json.RawMessage(`[{"color":"#ff0000","points":[[52.1,5.1],[52.1,5.11]]}]`),
			Settings:    models.EmptyObject,
		},
		{ //nolint:exhaustruct
			UserID:    userID,
			Title:     "Voorrangssituatie kruising",
			Location:  "Utrecht, Biltstraat",
			Incidents: models.EmptyArray,
			Lines:     models.EmptyArray,
			Settings:  json.RawMessage(`{"zoom":16}`),
		},
	}
}
