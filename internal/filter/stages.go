package filter

import (
	"regexp"
	"strings"

	"github.com/ignite/channel-curator/internal/channel"
	"github.com/ignite/channel-curator/internal/urlx"
)

// The flat stages below are single membership tests per row. They share the
// urlx extractor with the religious classifier but carry no other coupling to
// it, and may run in any order.

// BitelStage removes entries served from the tv360.bitel provider network.
type BitelStage struct{}

const bitelDomainFragment = "tv360.bitel"

func (BitelStage) Name() string { return "bitel" }

func (BitelStage) Evaluate(rec channel.Record) (bool, Match) {
	host := urlx.ExtractDomain(rec.URL)
	if host == "" || !strings.Contains(host, bitelDomainFragment) {
		return false, Match{}
	}
	return true, Match{
		Confidence:   1.0,
		Reasons:      []string{"bitel_domain"},
		MatchedTerms: []string{bitelDomainFragment},
	}
}

// PlutoStage removes entries belonging to the Pluto TV provider.
type PlutoStage struct{}

var plutoKeywords = []string{
	"pluto tv",
	"pluto.tv",
	"plutotv",
	"service-stitcher.clusters.pluto.tv",
	"cfd-v4-service-channel-stitcher-use1-1.prd.pluto.tv",
}

func (PlutoStage) Name() string { return "pluto" }

func (PlutoStage) Evaluate(rec channel.Record) (bool, Match) {
	name := strings.ToLower(rec.Name)
	url := strings.ToLower(rec.URL)
	for _, kw := range plutoKeywords {
		if strings.Contains(name, kw) || strings.Contains(url, kw) {
			return true, Match{
				Confidence:   1.0,
				Reasons:      []string{"pluto_provider"},
				MatchedTerms: []string{kw},
			}
		}
	}
	return false, Match{}
}

// PoliticalStage removes entries for legislative, governmental and other
// institutional channels.
type PoliticalStage struct{}

var politicalKeywords = []string{
	// Legislative institutions
	"congreso", "congress", "parliament", "parlamento", "diputados",
	"senado", "senate", "asamblea", "assembly", "cámara", "chamber",
	"legislativo", "legislative",

	// Government institutions
	"gobierno", "government", "ministerio", "ministry", "presidencia",
	"presidency", "municipal", "ayuntamiento", "alcaldía", "city hall",
	"town hall", "federal", "estatal", "state", "provincial", "regional",

	// Specific channels
	"controversia tv", "marin tv government", "parliament of guyana",

	// General political terms
	"político", "political", "política", "politics", "gubernamental",
	"institucional", "institutional", "oficial", "official",
}

func (PoliticalStage) Name() string { return "political" }

func (PoliticalStage) Evaluate(rec channel.Record) (bool, Match) {
	if rec.Name == "" {
		return false, Match{}
	}
	name := strings.ToLower(rec.Name)
	url := strings.ToLower(rec.URL)
	for _, kw := range politicalKeywords {
		if strings.Contains(name, kw) || strings.Contains(url, kw) {
			return true, Match{
				Confidence:   1.0,
				Reasons:      []string{"political_keyword"},
				MatchedTerms: []string{kw},
			}
		}
	}
	return false, Match{}
}

// GeoStage removes entries whose domain points at blocked geopolitical
// origins.
type GeoStage struct{}

var geoDomainFragments = []string{
	// Russia
	".ru", ".рф", "russia", "moscow", "kremlin",
	"rtvi", "rt.com", "sputnik", "vesti", "channel1", "ntv.ru",

	// Gulf states, North Africa, Levant and nearby
	".ae", ".sa", ".qa", ".kw", ".bh", ".om",
	".eg", ".ly", ".tn", ".ma", ".dz",
	".sy", ".lb", ".jo", ".iq", ".ye",
	".ir", ".af", ".pk",
	"aljazeera", "alarabiya", "mbc", "lbc",
	"dubai", "abu", "qatar", "kuwait",
	"saudi", "emirates", "bahrain",
	"tehran", "kabul", "islamabad",

	// Former USSR and nearby
	".by", ".ua", ".kz", ".uz", ".kg", ".tj", ".tm",
	".ge", ".am", ".az", ".md",
	".mn", ".cn",
	"belarus", "ukraine", "kazakhstan", "uzbekistan",
	"georgia", "armenia", "azerbaijan", "moldova",
}

var cyrillicRe = regexp.MustCompile(`(?i)[а-яё]`)

func (GeoStage) Name() string { return "geo" }

func (GeoStage) Evaluate(rec channel.Record) (bool, Match) {
	host := urlx.ExtractDomain(rec.URL)
	if host == "" {
		return false, Match{}
	}
	if cyrillicRe.MatchString(host) {
		return true, Match{
			Confidence:   1.0,
			Reasons:      []string{"cyrillic_domain"},
			MatchedTerms: []string{host},
		}
	}
	for _, frag := range geoDomainFragments {
		if strings.Contains(host, frag) {
			return true, Match{
				Confidence:   1.0,
				Reasons:      []string{"geopolitical_domain"},
				MatchedTerms: []string{frag},
			}
		}
	}
	return false, Match{}
}
