package main

const (
	SiteTitle       = "Kane Fernandez"
	MetaDescription = "Kane Fernandez designs and builds websites and brand identities for independent companies."
)

var (
	HeroLines = []string{"Websites and brands", "for companies with", "something to say."}

	AboutMe = `I'm a designer who builds. Most projects start with a conversation about what a
	company actually does, and end with a site or an identity that says it plainly. I work
	closely with a small number of clients at a time, from the first sketch to launch day,
	and I stick around afterwards.`

	Services = []service{
		{
			Name:    "Website",
			Summary: "Design and development of marketing sites, storefronts and product pages, built to be fast and easy to edit.",
		},
		{
			Name:    "Branding",
			Summary: "Logos, type, colour and motion systems that hold together from a business card to a billboard.",
		},
	}
)

type service struct {
	Name    string
	Summary string
}
