package constants

// Redis key formats
const (
	// Courts Service
	KeyCourtPlayers = "court:players:%s" // Format: court:players:{court_id}, set of public user IDs
	KeyCourtGeo     = "courts:geo"       // Geo set of all court locations
	KeyUserCourt    = "user:court:%s"    // Format: user:court:{user_id}, current court ID
)
