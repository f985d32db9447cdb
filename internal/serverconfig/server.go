// Package serverconfig holds the typed models of the Arma 3 server config
// files and the schemas that map them to text.
package serverconfig

import (
	"github.com/ossyrian/a3cfg/internal/cfgtext"
)

// ServerConfig is the content of server.cfg. The mission rotation lives in
// the same file but is handled by package mission.
//
// See https://community.bistudio.com/wiki/server.cfg
type ServerConfig struct {
	HostName              string
	AdminPassword         string
	Password              string
	ServerCommandPassword string

	MaxPlayers     *int
	Motd           []string
	MotdInterval   *int
	Admins         []string
	HeadlessIPs    []string
	LocalClientIPs []string

	VoteThreshold      *float64
	VoteMissionPlayers *int
	KickDuplicate      *int
	Loopback           bool
	Upnp               bool

	AllowedFilePatching    int
	FilePatchingExceptions []string
	DisconnectTimeout      *int
	MaxDesync              *int
	MaxPing                *int
	MaxPacketLoss          *int
	CallExtReportLimit     *float64

	VotingTimeout     *int
	RoleTimeout       *int
	BriefingTimeout   *int
	DebriefingTimeout *int
	LobbyIdleTimeout  *int

	VerifySignatures int
	DrawingInMap     bool
	DisableVoN       *int
	VonCodecQuality  *int
	VonCodec         int
	SkipLobby        bool

	LogFile            string
	DoubleIDDetected   string
	OnUserConnected    string
	OnUserDisconnected string
	OnHackedData       string
	OnDifferentData    string
	OnUnsignedData     string
	OnUserKicked       string

	BattlEye                bool
	TimeStampFormat         string
	ForceRotorLibSimulation *int
	Persistent              *int
	RequiredBuild           *int
	ForcedDifficulty        string

	MissionWhitelist                []string
	AllowedLoadFileExtensions       []string
	AllowedPreprocessFileExtensions []string
	AllowedHTMLLoadExtensions       []string
	StatisticsEnabled               *int
	AutoSelectMission               bool
	RandomMissionOrder              bool
	MissionsToServerRestart         *int
	MissionsToShutdown              *int
}

// NewServerConfig returns a ServerConfig with the values the server uses
// when a statement is missing.
func NewServerConfig() ServerConfig {
	return ServerConfig{
		HeadlessIPs:    []string{"127.0.0.1"},
		LocalClientIPs: []string{"127.0.0.1"},
	}
}

func key(k string) cfgtext.FieldDescriptor { return cfgtext.FieldDescriptor{Key: k} }

func quoted(k string) cfgtext.FieldDescriptor { return cfgtext.FieldDescriptor{Key: k, Quoted: true} }

// ServerSchema maps ServerConfig onto server.cfg statements.
var ServerSchema = cfgtext.NewSchema(
	cfgtext.String(quoted("hostname"), func(c *ServerConfig) *string { return &c.HostName }),
	cfgtext.String(quoted("passwordAdmin"), func(c *ServerConfig) *string { return &c.AdminPassword }),
	cfgtext.String(quoted("password"), func(c *ServerConfig) *string { return &c.Password }),
	cfgtext.String(quoted("serverCommandPassword"), func(c *ServerConfig) *string { return &c.ServerCommandPassword }),

	cfgtext.OptionalInt(key("maxPlayers"), func(c *ServerConfig) **int { return &c.MaxPlayers }),
	cfgtext.Strings(key("motd[]"), func(c *ServerConfig) *[]string { return &c.Motd }),
	cfgtext.OptionalInt(key("motdInterval"), func(c *ServerConfig) **int { return &c.MotdInterval }),
	cfgtext.Strings(key("admins[]"), func(c *ServerConfig) *[]string { return &c.Admins }),
	cfgtext.Strings(key("headlessClients[]"), func(c *ServerConfig) *[]string { return &c.HeadlessIPs }),
	cfgtext.Strings(key("localClient[]"), func(c *ServerConfig) *[]string { return &c.LocalClientIPs }),

	cfgtext.OptionalFloat(key("voteThreshold"), func(c *ServerConfig) **float64 { return &c.VoteThreshold }),
	cfgtext.OptionalInt(key("voteMissionPlayers"), func(c *ServerConfig) **int { return &c.VoteMissionPlayers }),
	cfgtext.OptionalInt(key("kickduplicate"), func(c *ServerConfig) **int { return &c.KickDuplicate }),
	cfgtext.Bool(key("loopback"), func(c *ServerConfig) *bool { return &c.Loopback }),
	cfgtext.Bool(key("upnp"), func(c *ServerConfig) *bool { return &c.Upnp }),

	cfgtext.Int(key("allowedFilePatching"), func(c *ServerConfig) *int { return &c.AllowedFilePatching }),
	cfgtext.Strings(key("filePatchingExceptions[]"), func(c *ServerConfig) *[]string { return &c.FilePatchingExceptions }),
	cfgtext.OptionalInt(key("disconnectTimeout"), func(c *ServerConfig) **int { return &c.DisconnectTimeout }),
	cfgtext.OptionalInt(key("maxdesync"), func(c *ServerConfig) **int { return &c.MaxDesync }),
	cfgtext.OptionalInt(key("maxping"), func(c *ServerConfig) **int { return &c.MaxPing }),
	cfgtext.OptionalInt(key("maxpacketloss"), func(c *ServerConfig) **int { return &c.MaxPacketLoss }),
	cfgtext.OptionalFloat(key("callExtReportLimit"), func(c *ServerConfig) **float64 { return &c.CallExtReportLimit }),

	cfgtext.OptionalInt(key("votingTimeOut"), func(c *ServerConfig) **int { return &c.VotingTimeout }),
	cfgtext.OptionalInt(key("roleTimeOut"), func(c *ServerConfig) **int { return &c.RoleTimeout }),
	cfgtext.OptionalInt(key("briefingTimeOut"), func(c *ServerConfig) **int { return &c.BriefingTimeout }),
	cfgtext.OptionalInt(key("debriefingTimeOut"), func(c *ServerConfig) **int { return &c.DebriefingTimeout }),
	cfgtext.OptionalInt(key("lobbyIdleTimeout"), func(c *ServerConfig) **int { return &c.LobbyIdleTimeout }),

	cfgtext.Int(key("verifySignatures"), func(c *ServerConfig) *int { return &c.VerifySignatures }),
	cfgtext.Bool(key("drawingInMap"), func(c *ServerConfig) *bool { return &c.DrawingInMap }),
	cfgtext.OptionalInt(key("disableVoN"), func(c *ServerConfig) **int { return &c.DisableVoN }),
	cfgtext.OptionalInt(key("vonCodecQuality"), func(c *ServerConfig) **int { return &c.VonCodecQuality }),
	cfgtext.Int(key("vonCodec"), func(c *ServerConfig) *int { return &c.VonCodec }),
	cfgtext.Bool(key("skipLobby"), func(c *ServerConfig) *bool { return &c.SkipLobby }),

	cfgtext.String(quoted("logFile"), func(c *ServerConfig) *string { return &c.LogFile }),
	cfgtext.String(quoted("doubleIdDetected"), func(c *ServerConfig) *string { return &c.DoubleIDDetected }),
	cfgtext.String(quoted("onUserConnected"), func(c *ServerConfig) *string { return &c.OnUserConnected }),
	cfgtext.String(quoted("onUserDisconnected"), func(c *ServerConfig) *string { return &c.OnUserDisconnected }),
	cfgtext.String(quoted("onHackedData"), func(c *ServerConfig) *string { return &c.OnHackedData }),
	cfgtext.String(quoted("onDifferentData"), func(c *ServerConfig) *string { return &c.OnDifferentData }),
	cfgtext.String(quoted("onUnsignedData"), func(c *ServerConfig) *string { return &c.OnUnsignedData }),
	cfgtext.String(quoted("onUserKicked"), func(c *ServerConfig) *string { return &c.OnUserKicked }),

	cfgtext.Bool(key("BattlEye"), func(c *ServerConfig) *bool { return &c.BattlEye }),
	cfgtext.String(quoted("timeStampFormat"), func(c *ServerConfig) *string { return &c.TimeStampFormat }),
	cfgtext.OptionalInt(key("forceRotorLibSimulation"), func(c *ServerConfig) **int { return &c.ForceRotorLibSimulation }),
	cfgtext.OptionalInt(key("persistent"), func(c *ServerConfig) **int { return &c.Persistent }),
	cfgtext.OptionalInt(key("requiredBuild"), func(c *ServerConfig) **int { return &c.RequiredBuild }),
	cfgtext.String(cfgtext.FieldDescriptor{Key: "forcedDifficulty", Quoted: true, LowerCase: true},
		func(c *ServerConfig) *string { return &c.ForcedDifficulty }),

	cfgtext.Strings(key("missionWhitelist[]"), func(c *ServerConfig) *[]string { return &c.MissionWhitelist }),
	cfgtext.Strings(key("allowedLoadFileExtensions[]"), func(c *ServerConfig) *[]string { return &c.AllowedLoadFileExtensions }),
	cfgtext.Strings(key("allowedPreprocessFileExtensions[]"), func(c *ServerConfig) *[]string { return &c.AllowedPreprocessFileExtensions }),
	cfgtext.Strings(key("allowedHTMLLoadExtensions[]"), func(c *ServerConfig) *[]string { return &c.AllowedHTMLLoadExtensions }),
	cfgtext.OptionalInt(key("statisticsEnabled"), func(c *ServerConfig) **int { return &c.StatisticsEnabled }),
	cfgtext.Bool(key("autoSelectMission"), func(c *ServerConfig) *bool { return &c.AutoSelectMission }),
	cfgtext.Bool(key("randomMissionOrder"), func(c *ServerConfig) *bool { return &c.RandomMissionOrder }),
	cfgtext.OptionalInt(key("missionsToServerRestart"), func(c *ServerConfig) **int { return &c.MissionsToServerRestart }),
	cfgtext.OptionalInt(key("missionsToShutdown"), func(c *ServerConfig) **int { return &c.MissionsToShutdown }),
).WithDefaults(NewServerConfig)
