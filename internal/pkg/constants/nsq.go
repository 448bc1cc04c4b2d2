package constants

// NSQ topics
const (
	// Courts Service
	TopicCourtCheckin  = "court.checkin"
	TopicCourtCheckout = "court.checkout"

	// Users Service
	TopicUserPrivacy = "user.privacy"

	// Device bridge
	TopicDeviceLocation = "device.location"
)

// NSQ channels
const (
	ChannelUsersService  = "users-service"
	ChannelCourtsService = "courts-service"
	ChannelGeofenceAgent = "geofence-agent"
)
