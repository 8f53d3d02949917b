package preferences

import (
	"bikeshare/console"
	"bikeshare/domain/entities/selection"
	"bikeshare/utils"
	"fmt"
	log "github.com/sirupsen/logrus"
)

const separatorWidth = 40

// Collector asks the user for a city, a month and a day until each answer is valid
type Collector struct {
	console    *console.Console
	vocabulary selection.Vocabulary
}

func NewCollector(c *console.Console, vocabulary selection.Vocabulary) *Collector {
	return &Collector{
		console:    c,
		vocabulary: vocabulary,
	}
}

// Collect returns a valid selection. Invalid answers are reported and the same question is asked
// again, there is no limit of retries. The only error is a closed or broken input
func (c *Collector) Collect() (selection.Selection, error) {
	c.console.Println()
	c.console.Success("=== Welcome to the BikeShare Data Explorer! ===")

	city, err := c.askCity()
	if err != nil {
		return selection.Selection{}, err
	}

	month, err := c.askMonth(city)
	if err != nil {
		return selection.Selection{}, err
	}

	day, err := c.askDay(city)
	if err != nil {
		return selection.Selection{}, err
	}

	c.console.Println()
	c.console.Separator("=", separatorWidth)

	s, err := c.vocabulary.NewSelection(city, month, day)
	if err != nil {
		// sanity check, every answer was already validated
		return selection.Selection{}, err
	}

	log.Debugf("[method: Collect] selection: %s", s)
	return s, nil
}

func (c *Collector) askCity() (string, error) {
	return c.ask(
		"city",
		func() {
			c.console.Println("\nAvailable cities:")
			for _, city := range c.vocabulary.Cities {
				c.console.Printf("- %s\n", utils.Title(city))
			}
		},
		"\nSelect a city to analyze: ",
		c.vocabulary.ValidCity,
	)
}

func (c *Collector) askMonth(city string) (string, error) {
	return c.ask(
		"month",
		func() {
			c.console.Println("\nAvailable months:")
			for _, month := range c.vocabulary.Months {
				c.console.Printf("- %s\n", utils.Title(month))
			}
			c.console.Printf("- %s (for no month filter)\n", selection.All)
		},
		fmt.Sprintf("\nSelect month for %s analysis: ", utils.Title(city)),
		c.vocabulary.ValidMonth,
	)
}

func (c *Collector) askDay(city string) (string, error) {
	return c.ask(
		"day",
		func() {
			c.console.Println("\nAvailable days:")
			for _, day := range selection.Weekdays {
				c.console.Printf("- %s\n", utils.Title(day))
			}
			c.console.Printf("- %s (for no day filter)\n", selection.All)
		},
		fmt.Sprintf("\nSelect day for %s analysis: ", utils.Title(city)),
		c.vocabulary.ValidDay,
	)
}

// ask shows the options and the question until isValid accepts the answer
func (c *Collector) ask(field string, showOptions func(), question string, isValid func(string) bool) (string, error) {
	for {
		showOptions()
		answer, err := c.console.Ask(question)
		if err != nil {
			return "", err
		}

		if isValid(answer) {
			return answer, nil
		}

		log.Debugf("[method: Collect] invalid %s: %q", field, answer)
		c.console.Error(fmt.Sprintf("\nInvalid %s! Please select from the available options.", field))
	}
}
