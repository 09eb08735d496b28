package config

// Built-in modal bodies, used when ui.yaml leaves body unset
const (
	defaultHelpBody = `New Dream: Start a fresh run.
Load Dream: Continue from a saved dream.
Night/Day: Changes the theme.
Controls

Left Mouse Click (Planning):
- Click to set a path point (creates a new node and links to the previous).
- Click + hold on empty space: creates a node that follows the cursor; locks on release.
- Click + hold on an existing node: drags the node; connected links redraw on release.

Right Mouse Click (Planning):
- Right click a hovered node to remove it.
- Deletes that node AND all nodes after it (order based on the first placed node / starter node).

Return Key:
- Begins the next phase.

T Key:
- Takes the current dream bubble item (if present) and places it into the selected cursor slot.

P Key:
- Selects the edit path option.

Space Bar:
- Use currently selected item.

1 Key:
- Selects the first inventory item.
2 Key:
- Selects the second inventory item.
3 Key:
- Selects the third inventory item.`

	defaultCreditsBody = `Developers:
Cristian Acevedo-Villasana
Corey Young
Nathan Wanjongkhum
Hussein Sheikh`
)
