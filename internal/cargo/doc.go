// Package cargo implements the container variants that can be loaded onto
// a ship.
//
// Every variant satisfies the Container capability and genuinely implements
// its own Load and Unload, so callers holding a Container always get the
// variant's rule:
//
//	liquid        fill capped at 50% (fuel) or 90% (other products) of max load
//	gas           plain capacity rule; unloading keeps 5% residue
//	refrigerated  refuses cargo while colder than the product requires
//
// Hazard reporting is a separate, narrow capability (HazardNotifier) that
// only liquid and gas containers implement.
//
// Serial numbers ("KON-L-1", "KON-G-1", ...) are issued by a Sequence owned
// by a Factory. There is no package-level counter: two factories number
// their containers independently, which keeps construction testable.
package cargo
