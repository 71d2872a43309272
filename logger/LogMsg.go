package logger

const LevelReloadedMsg = "log level reloaded: %s"

const ConfigLoadedMsg = "config loaded from %s (frontend=%s, tickRate=%d)"
const ConfigDefaultsMsg = "no properties file for env %s, using defaults"

const MatchWaitingMsg = "room %s waiting for players"
const PlayerReadyMsg = "%s player ready in room %s"
const MatchCountdownMsg = "match %s counting down"
const MatchStartedMsg = "match %s started"
const PointScoredMsg = "%s player scored"
const MatchFinishedMsg = "match %s finished, %s player wins"
const MatchRestartMsg = "room %s restarting"

const FrontendStartMsg = "starting %s frontend"
const FrontendStopMsg = "%s frontend stopped"
