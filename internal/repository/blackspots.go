package repository

import "github.com/jengzang/saferoute-backend-go/internal/models"

func blackspot(name string, lat, lng float64, count int, zone, desc string) models.HazardRecord {
	return models.HazardRecord{
		Name:          name,
		Location:      models.Location{Lat: lat, Lng: lng},
		AccidentCount: count,
		Zone:          zone,
		Description:   desc,
	}
}

// DefaultHazards returns the built-in Nagpur blackspot table
func DefaultHazards() []models.HazardRecord {
	return []models.HazardRecord{
		blackspot("Prakash High School to Kapsi Bridge (Pardi)", 21.0891, 79.0641, 15, "Pardi", "Highest accident rate in city"),
		blackspot("Maruti Showroom Square (Indora)", 21.1258, 79.0882, 12, "Indora", "High traffic intersection"),
		blackspot("Old Pardi Naka Square", 21.0935, 79.0595, 11, "Pardi", "Frequent collision point"),
		blackspot("Shankar Nagar Square", 21.1468, 79.0925, 10, "Dharampeth", "Busy commercial area"),
		blackspot("Variety Square", 21.1507, 79.0883, 9, "Sitabuldi", "Major traffic junction"),
		blackspot("LIC Square", 21.1417, 79.0906, 8, "Sitabuldi", "Commercial district hotspot"),
		blackspot("Kasturchand Park Square", 21.1500, 79.0847, 8, "Sitabuldi", "Central business district"),
		blackspot("Hanuman Mandir Square (Pardi)", 21.0889, 79.0658, 7, "Pardi", "Temple area with heavy pedestrian traffic"),
		blackspot("Seminary Hills Chowk", 21.1357, 79.0447, 6, "Dhantoli", "Residential area junction"),
		blackspot("Rahate Colony Square", 21.1213, 79.0475, 6, "Dhantoli", "School zone area"),
		blackspot("Ajni Square (Railway Station Road)", 21.1425, 79.1156, 6, "Ajni", "Near railway station"),
		blackspot("Sitabuldi Interchange", 21.1482, 79.0873, 5, "Sitabuldi", "Major flyover intersection"),
		blackspot("8th Mile Square, Amravati Road (Wadi)", 21.2008, 79.0426, 5, "Wadi", "Highway junction"),
		blackspot("Cotton Market Square", 21.1520, 79.0920, 5, "Sitabuldi", "Market area congestion"),
		blackspot("Mangalwari Square (Sadar)", 21.1543, 79.0832, 4, "Sadar", "Historical market junction"),
		blackspot("Ambazari Road Junction", 21.1287, 79.0354, 4, "Dharampeth", "Lake area traffic point"),
		blackspot("Ujwal Nagar Square", 21.0952, 79.0423, 4, "Dhantoli", "Residential junction"),
		blackspot("Khamla Square", 21.1615, 79.0561, 3, "Khamla", "Outer ring road point"),
		blackspot("Manish Nagar Square", 21.0781, 79.0289, 3, "Manish Nagar", "Residential area"),
		blackspot("Mate Square (Nandanvan)", 21.1678, 79.0982, 3, "Nandanvan", "Growing residential zone"),
		blackspot("Jaiprakash Nagar Square", 21.1092, 79.0598, 2, "Dharampeth", "Local market junction"),
		blackspot("Friends Colony Square", 21.0823, 79.0512, 2, "Dhantoli", "Residential intersection"),
		blackspot("Kachipura Square (Mominpura)", 21.1623, 79.0828, 2, "Mominpura", "Dense residential area"),
	}
}
