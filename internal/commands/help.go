package commands

func helpLines() []string {
	return []string{
		"Available commands:",
		"  build <planet> <structure>                 start construction",
		"  upgrade <planet> <structure>               upgrade a structure",
		"  build_ship <planet> <ship_type>            order a ship at the shipyard",
		"  cancel <planet>                            cancel the pending action (partial refund)",
		"  status [turn|planets|planet <id>|player]   show game state",
		"  map                                        render the galaxy map",
		"  ships                                      list your ships",
		"  fleets                                     list your fleets",
		"  fleet create <name> <ship_id>...           form a fleet from ships at one planet",
		"  fleet add <fleet_id> <ship_id>...          add ships to a fleet",
		"  fleet remove <fleet_id> <ship_id>...       remove ships from a fleet",
		"  fleet disband <fleet_id>                   dissolve a fleet",
		"  fleet move <fleet_id> <planet>             travel along a connection",
		"  fleet bombard <fleet_id>                   bombard the enemy planet in orbit",
		"  fleet cancel-bombard <fleet_id>            stop bombarding",
		"  fleet colonize <fleet_id>                  claim the shieldless planet in orbit",
		"  end_turn | end                             pass the turn",
		"  help                                       this message",
		"  exit | terminate                           leave the game",
	}
}
