package signature

// DefaultDefinitions is the built-in signature set. Order is significant:
// earlier entries take precedence when patterns overlap.
var DefaultDefinitions = []Definition{
	{Name: "NetworkError", Pattern: `nsUtils.*err:\s*5|network\s+list.*err:\s*5`},
	{Name: "TunnelError", Pattern: `CTunnelMgr.*No tunnel found|tunnel.*not\s+found`},
	{Name: "Proxy403", Pattern: `HTTP\s+response\s+code:\s*403|forbidden`},
	{Name: "RecordingCorrupted", Pattern: `corrupted\s+recording|Failed to finalize record|Recovery process failed to recover`},
	{Name: "PSM_DuplicateSession", Pattern: `Duplicated session was (created|deleted)|Session UUID.*was unregistered`},
	{Name: "PSM_VaultIssues", Pattern: `Attempting to delete the Vault user session|Vault session .* does not exist|Open vault file operation (success|fail)`},
	{Name: "PSM_ListenerLogoff", Pattern: `PSM listener.*logoff|TSSession logoff event`},
	{Name: "PSM_InternalConn", Pattern: `InternalConnectionClient.*(has stopped|Terminating session process)`},
	{Name: "Auth_TicketMissing", Pattern: `Ticket ID was not found|Failed to find session identifiers|session LUID was not found`},
}

// DefaultRegistry compiles the built-in signature set.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(DefaultDefinitions)
}
